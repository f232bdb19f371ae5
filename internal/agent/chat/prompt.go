package chat

// analysisPrompt is the intent-stage contract: one JSON object carrying the
// conversational reply and the reminder trigger decision. The plain-text
// rules exist because the reply is rendered in text-only surfaces; models
// kept sneaking HTML in without them.
const analysisPrompt = `Analyze the user's message and respond in JSON format. You should:
1. Provide a helpful response to the user
2. Determine if the message contains reminder/scheduling information

Current date: %s
Current time: %s
%s
User message: "%s"

CRITICAL: Your response message must be PLAIN TEXT ONLY for a text-based chat interface.
ABSOLUTELY NO HTML TAGS: No <br>, no <div>, no <span>, no <i>, no status indicators, no styling.
NO PROCESSING MESSAGES: Don't mention "processing" or "enhanced parsing" or status updates.
SIMPLE CONVERSATIONAL TEXT ONLY.

Respond ONLY in this JSON format:
{
    "message": "Your helpful response (PLAIN TEXT ONLY - NO HTML WHATSOEVER)",
    "trigger": true/false%s
}

Set trigger to true if the user wants to:
- Set a reminder
- Schedule something
- Remember to do something
- Has appointment/meeting information
- Mentions specific dates/times for tasks

Set trigger to false for general questions, greetings, or casual conversation.

GOOD EXAMPLES:
- "Remind me to call John at 3 PM" -> {"message": "I'll set a reminder for you to call John at 3 PM.", "trigger": true}
- "What's the weather like?" -> {"message": "I don't have access to current weather information, but you can check a weather app for the latest forecast.", "trigger": false}
- "Hello, how are you?" -> {"message": "Hello! I'm doing well, thank you. How can I help you today?", "trigger": false}`

const titleField = `,
    "title": "Brief conversation title"`
