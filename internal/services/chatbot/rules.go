package chatbot

import (
	"context"
	"regexp"
	"time"
)

// Имена правил, они же значения метки intent.
const (
	IntentGreeting     = "greeting"
	IntentToday        = "today"
	IntentTomorrow     = "tomorrow"
	IntentMonthly      = "monthly"
	IntentUpcoming     = "upcoming"
	IntentCompleted    = "completed"
	IntentPending      = "pending"
	IntentHighPriority = "high_priority"
	IntentCount        = "count"
	IntentHelp         = "help"
	IntentReminder     = "reminder"
	IntentFallback     = "fallback"
)

type handler func(s *Service, ctx context.Context, userUID string, now time.Time) (string, error)

type rule struct {
	name   string
	match  func(text string) bool
	handle handler
}

// rules проверяются по порядку, срабатывает первое совпадение.
var rules = []rule{
	{IntentGreeting, anyOf(`^(hi|hello|hey|good morning|good afternoon|good evening)`), (*Service).greeting},
	{IntentToday, anyOf(`(what|show|list|tell me about).*today`, `today.*task`), (*Service).today},
	{IntentTomorrow, anyOf(`(what|show|list|tell me about).*tomorrow`, `tomorrow.*task`), (*Service).tomorrow},
	{IntentMonthly, anyOf(`(monthly|month|this month).*task`, `task.*month`), (*Service).monthly},
	{IntentUpcoming, anyOf(`(upcoming|next|future).*task`), (*Service).upcoming},
	{IntentCompleted, anyOf(`(completed|done|finished).*task`), (*Service).completed},
	{IntentPending, anyOf(`(pending|remaining|left).*task`), (*Service).pending},
	{IntentHighPriority, anyOf(`(high priority|important|urgent).*task`), (*Service).highPriority},
	{IntentCount, anyOf(`(how many|count|number).*task`), (*Service).count},
	{IntentHelp, anyOf(`(help|what can you do|commands)`), (*Service).help},
	{IntentReminder, anyOf(`remind me about`), (*Service).reminder},
}

var fallback = rule{IntentFallback, func(string) bool { return true }, (*Service).fallback}

func anyOf(patterns ...string) func(string) bool {
	res := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		res[i] = regexp.MustCompile(p)
	}
	return func(text string) bool {
		for _, re := range res {
			if re.MatchString(text) {
				return true
			}
		}
		return false
	}
}

func match(text string) rule {
	for _, r := range rules {
		if r.match(text) {
			return r
		}
	}
	return fallback
}
