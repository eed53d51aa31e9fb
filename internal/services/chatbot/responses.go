package chatbot

var greetings = []string{
	"Hello! How can I help you with your tasks today?",
	"Hi there! What can I do for you?",
	"Hey! Ready to manage your tasks?",
}

var defaultResponses = []string{
	"I'm not sure how to help with that. Try asking about today's tasks, monthly schedule, or type 'help' for more options.",
	"I can help you with task management! Ask me about your tasks, schedule, or type 'help' to see what I can do.",
	"Hmm, I didn't understand that. You can ask me things like 'What tasks do I have today?' or 'Show my monthly schedule'.",
}

const helpMessage = "I can help you with your tasks! Here's what you can ask me:\n\n" +
	"• 'What tasks do I have today?'\n" +
	"• 'Show me tomorrow's tasks'\n" +
	"• 'What's my monthly schedule?'\n" +
	"• 'Show me upcoming tasks'\n" +
	"• 'How many tasks do I have?'\n" +
	"• 'What are my high priority tasks?'\n" +
	"• 'Show me completed tasks'\n" +
	"• 'What pending tasks do I have?'\n\n" +
	"Try asking in your own words - I'm pretty smart!"

const reminderMessage = "I'll make sure you get notified about your tasks when they're due! " +
	"The system checks for reminders every 30 seconds and will send you browser notifications."

const (
	noTasksToday      = "You don't have any tasks scheduled for today. Great job staying on top of things!"
	noTasksTomorrow   = "You don't have any tasks scheduled for tomorrow."
	noTasksThisMonth  = "You don't have any tasks scheduled for this month."
	noUpcomingTasks   = "You don't have any upcoming tasks."
	noCompletedTasks  = "You haven't completed any tasks yet. Keep going!"
	noPendingTasks    = "You don't have any pending tasks. All caught up!"
	noHighPriority    = "You don't have any high priority tasks. Nice work!"
	noTasksAtAll      = "You don't have any tasks yet. Start by adding your first task!"
	pendingQuiteAFew  = "That's quite a few! Try to focus on the high priority ones first."
	pendingGoodPace   = "You're making good progress!"
	pendingAlmostDone = "Almost there!"
)

const (
	monthlyPreview  = 5
	upcomingLimit   = 10
	recentCompleted = 5
)
