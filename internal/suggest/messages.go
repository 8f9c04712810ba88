package suggest

// Messages emitted by the rules.
const (
	MsgSleepLow         = "You've been getting less than 6 hours of sleep for several days. Try to prioritize rest and aim for 7-8 hours."
	MsgSleepSlightlyLow = "Your sleep has been a bit low recently. Consider going to bed 30 minutes earlier tonight."
	MsgWaterLow         = "Your water intake has been low. Try to drink at least 8 glasses of water daily for better focus and energy."
	MsgStressHigh       = "Your stress levels have been high lately. Consider taking short breaks, practicing mindfulness, or going for a walk."
	MsgMoodLow          = "Your mood has been lower than usual. Consider talking to someone, doing something you enjoy, or taking a break if possible."
	MsgProductivityLow  = "Your task completion rate is low. Try breaking down larger tasks into smaller, manageable steps."
	MsgProductivityHigh = "Great job completing your tasks! Your productivity has been excellent."
	MsgLogHealth        = "Remember to log your health data daily for more accurate insights and suggestions."
	MsgLogMood          = "Don't forget to track your mood daily. Regular tracking helps identify patterns and improve well-being."
)

// MotivationalMessages is the pool the closing message is drawn from.
var MotivationalMessages = []string{
	"Small steps lead to big changes. Keep going!",
	"Your wellbeing matters. Take time for yourself today.",
	"Progress isn't always linear. Be kind to yourself.",
	"Every small healthy choice adds up over time.",
	"Your future self will thank you for the good habits you build today.",
}
