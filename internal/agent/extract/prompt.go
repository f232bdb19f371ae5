package extract

// extractionPrompt is the extraction-stage contract: one JSON object with the
// reminder draft. Date and time stay raw expressions here ("16 july", "10pm");
// the pipeline normalizes them afterwards. The stage sets error itself when
// the user explicitly asked for a past date.
const extractionPrompt = `Extract reminder details from this message with enhanced validation.

Current date: %s
Current time: %s

User message: "%s"

IMPORTANT VALIDATION RULES:
1. Parse dates in various formats: "16 july", "july 16", "jul 16", "today", "tomorrow"
2. Calculate relative times accurately (like "in 3 hours", "next 5 days")
3. Check if date/time is in the past - if yes, set error message
4. For same day reminders, only check if the TIME is in the past, not the date
5. When a message contains both an absolute date and a relative one, the absolute date wins

TIME PARSING EXAMPLES:
- "10pm" -> "22:00"
- "10 pm" -> "22:00"
- "9am" -> "09:00"
- "9 am" -> "09:00"

Respond ONLY in this JSON format:
{
    "title": "Brief action to remember (required)",
    "date": "YYYY-MM-DD format or relative like 'today'/'tomorrow'",
    "time": "HH:MM in 24-hour format or null",
    "description": "Additional context if any",
    "error": "Error message if validation fails, null if valid"
}

Examples:
- "playing chess at 10pm at 16 july" -> {"title": "Playing chess", "date": "16 july", "time": "22:00", "description": "", "error": null}
- "meeting today at 3 PM" -> {"title": "Meeting", "date": "today", "time": "15:00", "description": "", "error": null}
- "remind me yesterday" -> {"title": "Reminder", "date": "yesterday", "time": null, "description": "", "error": "Cannot set reminder for past date"}
- "call mom in 5 hours" -> {"title": "Call mom", "date": "today", "time": "in 5 hours", "description": "", "error": null}`
