package schedule

import "quickconf/internal/domain"

var talkTypeStyles = map[domain.TalkType]domain.TalkTypeStyle{
	domain.TalkTypeKeynote: {
		Label: "Keynote",
		Card: "border-rose-200 bg-rose-100/90 dark:border-rose-800 dark:bg-rose-900/90 " +
			"hover:border-rose-500 dark:hover:border-rose-400",
		Text:   "text-rose-700 dark:text-rose-300",
		Legend: "bg-rose-100 dark:bg-rose-900 ring-rose-200 dark:ring-rose-800",
	},
	domain.TalkTypeWorkshop: {
		Label: "Workshop",
		Card: "border-teal-200 bg-teal-100/90 dark:border-teal-800 dark:bg-teal-900/90 " +
			"hover:border-teal-500 dark:hover:border-teal-400",
		Text:   "text-teal-700 dark:text-teal-300",
		Legend: "bg-teal-100 dark:bg-teal-900 ring-teal-200 dark:ring-teal-800",
	},
	domain.TalkTypeLightningTalk: {
		Label: "Lightning Talk",
		Card: "border-amber-200 bg-amber-50/90 dark:border-amber-800 dark:bg-amber-900/40 " +
			"hover:border-amber-500 dark:hover:border-amber-400",
		Text:   "text-amber-700 dark:text-amber-300",
		Legend: "bg-amber-100 dark:bg-amber-900 ring-amber-200 dark:ring-amber-800",
	},
	domain.TalkTypePanel: {
		Label: "Panel",
		Card: "border-fuchsia-200 bg-fuchsia-100/90 dark:border-fuchsia-800 dark:bg-fuchsia-900/90 " +
			"hover:border-fuchsia-500 dark:hover:border-fuchsia-400",
		Text:   "text-fuchsia-700 dark:text-fuchsia-300",
		Legend: "bg-fuchsia-100 dark:bg-fuchsia-900 ring-fuchsia-200 dark:ring-fuchsia-800",
	},
	domain.TalkTypeOther: {
		Label: "Other",
		Card: "border-gray-200 bg-gray-100/90 dark:border-gray-700 dark:bg-gray-800/90 " +
			"hover:border-gray-400 dark:hover:border-gray-500",
		Text:   "text-gray-700 dark:text-gray-300",
		Legend: "bg-gray-100 dark:bg-gray-800 ring-gray-200 dark:ring-gray-700",
	},
	domain.TalkTypeTalk: {
		Label: "Talk",
		Card: "border-primary-200 bg-primary-100/90 dark:border-primary-800 dark:bg-primary-900/90 " +
			"hover:border-primary-500 dark:hover:border-primary-400",
		Text:   "text-primary-700 dark:text-primary-300",
		Legend: "bg-primary-100 dark:bg-primary-900 ring-primary-200 dark:ring-primary-800",
	},
}

// TalkTypeStyleFor returns the display style of a talk type; unknown types use the "talk" style.
func TalkTypeStyleFor(t domain.TalkType) domain.TalkTypeStyle {
	if s, ok := talkTypeStyles[t]; ok {
		return s
	}
	return talkTypeStyles[domain.TalkTypeTalk]
}
