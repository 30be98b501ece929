package perception

import (
	"regexp"

	"krishimitra/internal/types"
)

func init() {
	register(&languageTable{
		lang: types.LanguageEnglish,

		completion: []*regexp.Regexp{
			// Activity verbs stay in the capture so "watered" can match "water".
			mustCompile(`(?:^|\s)i(?:'ve|\s+have)?\s+(?:(?:just|already|finally|also|now)\s+)*(?P<activity>(?:watered|irrigated|harvested|sprayed|sowed|sown|planted|fed|fertilized|fertilised|weeded|ploughed|plowed|tilled|cleaned|paid|bought|called|visited|fixed|repaired|checked|applied|collected|sold|delivered|submitted|booked|milked|vaccinated|pruned|mulched)\s+.+)`),
			mustCompile(`(?:^|\s)i(?:'ve|\s+have)?\s+(?:(?:just|already|finally|also|now)\s+)*(?:did|done|finished|completed)\s+(?:with\s+)?(?P<activity>.+)`),
			mustCompile(`(?:^|\s)i(?:'m|\s+am)\s+(?:all\s+)?(?:done|finished)\s+(?:with\s+)?(?P<activity>.+)`),
			mustCompile(`^(?:please\s+)?(?:mark|set|tick)\s+(?:off\s+)?(?P<activity>.+?)\s+(?:as\s+)?(?:done|complete|completed|finished)$`),
			mustCompile(`^(?P<activity>.+?)\s+(?:is|are|was|were)\s+(?:all\s+)?(?:done|completed|finished)$`),
			mustCompile(`^(?:finished|completed|done\s+with)\s+(?P<activity>.+)`),
		},
		conjunctions: []string{"and", "also", "plus"},
		both:         []string{"both", "all"},
		stopwords: []string{
			"the", "a", "an", "and", "to", "of", "my", "our", "all", "with", "for",
			"in", "on", "at", "today", "just", "already", "have", "has", "had", "been",
			"some", "this", "that", "these", "those", "it", "its", "from", "into",
		},

		redirect: []string{
			"take me to", "take me", "show me", "open", "go to", "navigate to",
			"redirect", "visit", "apply for", "apply", "link", "website", "portal",
			"le chalo", "dikhao", "kholo",
		},
		affirmative: []string{
			"yes", "yeah", "yep", "yup", "sure", "ok", "okay", "okey", "alright",
			"all right", "of course", "please do", "go ahead", "haan", "han", "ha",
			"ji", "ji haan", "theek hai", "thik hai", "bilkul",
		},

		priority: []priorityWord{
			{"not urgent", types.PriorityLow},
			{"not important", types.PriorityLow},
			{"no rush", types.PriorityLow},
			{"no hurry", types.PriorityLow},
			{"low priority", types.PriorityLow},
			{"whenever", types.PriorityLow},
			{"sometime", types.PriorityLow},
			{"medium priority", types.PriorityMedium},
			{"normal priority", types.PriorityMedium},
			{"high priority", types.PriorityHigh},
			{"urgent", types.PriorityHigh},
			{"asap", types.PriorityHigh},
			{"immediately", types.PriorityHigh},
			{"right away", types.PriorityHigh},
			{"important", types.PriorityHigh},
			{"critical", types.PriorityHigh},
			{"jaldi", types.PriorityHigh},
			{"turant", types.PriorityHigh},
		},
		category: []categoryWord{
			{"irrigat", types.CategoryFarming},
			{"water", types.CategoryFarming},
			{"crop", types.CategoryFarming},
			{"soil", types.CategoryFarming},
			{"harvest", types.CategoryFarming},
			{"pesticide", types.CategoryFarming},
			{"spray", types.CategoryFarming},
			{"seed", types.CategoryFarming},
			{"sow", types.CategoryFarming},
			{"plant", types.CategoryFarming},
			{"fertili", types.CategoryFarming},
			{"manure", types.CategoryFarming},
			{"compost", types.CategoryFarming},
			{"field", types.CategoryFarming},
			{"farm", types.CategoryFarming},
			{"tractor", types.CategoryFarming},
			{"plough", types.CategoryFarming},
			{"plow", types.CategoryFarming},
			{"weed", types.CategoryFarming},
			{"cattle", types.CategoryFarming},
			{"cow", types.CategoryFarming},
			{"buffalo", types.CategoryFarming},
			{"livestock", types.CategoryFarming},
			{"fodder", types.CategoryFarming},
			{"mandi", types.CategoryFarming},
			{"wheat", types.CategoryFarming},
			{"paddy", types.CategoryFarming},
			{"rice", types.CategoryFarming},
			{"cotton", types.CategoryFarming},
			{"sugarcane", types.CategoryFarming},
			{"orchard", types.CategoryFarming},
			{"greenhouse", types.CategoryFarming},
			{"appointment", types.CategoryPersonal},
			{"doctor", types.CategoryPersonal},
			{"hospital", types.CategoryPersonal},
			{"clinic", types.CategoryPersonal},
			{"medicine", types.CategoryPersonal},
			{"family", types.CategoryPersonal},
			{"health", types.CategoryPersonal},
			{"errand", types.CategoryPersonal},
			{"birthday", types.CategoryPersonal},
			{"wedding", types.CategoryPersonal},
			{"school", types.CategoryPersonal},
			{"grocer", types.CategoryPersonal},
			{"shopping", types.CategoryPersonal},
			{"bill", types.CategoryPersonal},
			{"bank", types.CategoryPersonal},
			{"call mom", types.CategoryPersonal},
			{"call dad", types.CategoryPersonal},
		},

		schemeWords: []string{"scheme", "yojana", "yojna", "programme", "program", "subsidy", "benefit"},
		synonyms: []schemeSynonym{
			{"kisan card", "kcc"},
			{"kisan loan", "kcc"},
			{"crop loan card", "kcc"},
			{"crop insurance", "pmfby"},
			{"fasal bima", "pmfby"},
			{"bima yojana", "pmfby"},
			{"samman nidhi", "pm-kisan"},
			{"pm kisan", "pm-kisan"},
			{"6000 rupees", "pm-kisan"},
			{"soil card", "soil-health-card"},
			{"soil test", "soil-health-card"},
			{"solar pump", "pm-kusum"},
			{"kusum", "pm-kusum"},
			{"online mandi", "e-nam"},
			{"enam", "e-nam"},
			{"drip irrigation", "pmksy"},
			{"micro irrigation", "pmksy"},
			{"sinchai yojana", "pmksy"},
		},
		wordGroups: []wordGroup{
			{[]string{"kisan", "credit"}, "kcc"},
			{[]string{"farmer", "credit"}, "kcc"},
			{[]string{"crop", "insurance"}, "pmfby"},
			{[]string{"fasal", "bima"}, "pmfby"},
			{[]string{"kisan", "samman"}, "pm-kisan"},
			{[]string{"kisan", "nidhi"}, "pm-kisan"},
			{[]string{"soil", "health"}, "soil-health-card"},
			{[]string{"solar", "pump"}, "pm-kusum"},
			{[]string{"national", "market"}, "e-nam"},
			{[]string{"irrigation", "scheme"}, "pmksy"},
			{[]string{"drip", "subsidy"}, "pmksy"},
		},

		taskMarkers: []string{
			"add a new task to", "add a task to", "add task to", "add a task", "add task",
			"add a reminder to", "add reminder to", "add a reminder", "add to my list",
			"add to list", "add", "new task", "create a task to", "create a task",
			"create task", "create a reminder", "create", "task", "tasks", "to-do",
			"todo", "remind me to", "remind me", "remind", "reminder", "set a reminder to",
			"set reminder to", "set a reminder", "note down", "make a note to", "schedule",
			"i need to", "i have to", "i must", "i should", "need to", "have to",
			"don't forget to", "do not forget to", "dont forget to",
		},
		fillers: []string{
			"please", "pls", "plz", "kindly", "can you", "could you", "would you",
			"will you", "for me", "i want to", "i want you to", "i would like to",
			"i'd like to", "hey",
		},
		nonTask: []string{
			"hi", "hello", "hello there", "hey", "namaste", "namaskar", "thanks",
			"thank you", "thank you so much", "ok", "okay", "yes", "no", "nope", "bye",
			"goodbye", "good morning", "good afternoon", "good evening", "good night",
			"how are you", "who are you", "help", "stop", "cancel", "nothing",
		},
		questions: []string{
			"what", "what's", "why", "how", "who", "where", "when", "which", "whose",
			"tell me", "explain", "is there", "are there", "do you", "does", "can i",
			"should i",
		},

		dates: []dateWord{
			{"the day after tomorrow", 2, 0},
			{"day after tomorrow", 2, 0},
			{"tomorrow", 1, 0},
			{"tmrw", 1, 0},
			{"today", 0, 0},
			{"tonight", 0, 0},
			{"next week", 7, 0},
			{"next month", 0, 1},
		},
		units: []unitWord{
			{"day", 1, 0},
			{"fortnight", 14, 0},
			{"week", 7, 0},
			{"month", 0, 1},
		},
		numbers: map[string]int{
			"a": 1, "an": 1, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
			"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
		},
		weekdays:   [7]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"},
		weekdayPre: []string{"on", "by", "this", "next", "coming"},
		partsOfDay: []partOfDay{
			{"in the morning", 9},
			{"this morning", 9},
			{"morning", 9},
			{"in the afternoon", 14},
			{"this afternoon", 14},
			{"afternoon", 14},
			{"in the evening", 18},
			{"this evening", 18},
			{"evening", 18},
			{"tonight", 20},
			{"at night", 20},
			{"night", 20},
		},

		relative: []*regexp.Regexp{
			mustCompile(`\b(?:in|after|within)\s+(?P<n>\d+|a|an|one|two|three|four|five|six|seven|eight|nine|ten)\s+(?P<unit>days?|weeks?|months?|fortnights?)\b`),
		},
		clock: []*regexp.Regexp{
			mustCompile(`(?:\b(?:at|by|around|before)\s+)?\b(?P<hour>\d{1,2})(?:[:.](?P<min>\d{2}))?\s*(?P<ampm>am|pm|a\.m\.|p\.m\.)`),
			mustCompile(`(?:\b(?:at|by|around|before)\s+)?\b(?P<hour>\d{1,2}):(?P<min>\d{2})\b`),
			mustCompile(`\b(?:at|by|around)\s+(?P<hour>\d{1,2})(?:\s*o'?clock)?\b`),
		},
		extra: []*regexp.Regexp{
			mustCompile(`\b(?:by|before|until|till|on|for|from)\s+(?:the\s+)?(?:day\s+after\s+tomorrow|tomorrow|today|tonight|next\s+week|next\s+month)\b`),
		},
	})
}
