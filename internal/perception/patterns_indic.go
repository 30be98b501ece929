package perception

import (
	"regexp"

	"krishimitra/internal/types"
)

// Indic completion patterns anchor on whitespace and string ends because
// \b only understands ASCII word characters.

var devanagariWeekdays = [7]string{"रविवार", "सोमवार", "मंगलवार", "बुधवार", "गुरुवार", "शुक्रवार", "शनिवार"}

func init() {
	register(hindiTable())
	register(kannadaTable())
	register(punjabiTable())
	register(marathiTable())
	register(gujaratiTable())
	register(bengaliTable())
}

func hindiTable() *languageTable {
	return &languageTable{
		lang: types.LanguageHindi,

		completion: []*regexp.Regexp{
			mustCompile(`^(?:मैंने\s+)?(?:(?:अभी|आज|पहले\s+ही)\s+)?(?P<activity>.+?)\s+(?:कर\s+(?:दिया|दी|दिए|लिया|ली|लिए)|दे\s+(?:दिया|दी|दिए)|डाल\s+(?:दिया|दी|दिए)|हो\s+(?:गया|गई|गए)|पूरा\s+(?:किया|कर\s+लिया|हो\s+गया)|किया|दिया|दी|डाली|डाला)(?:\s+है)?$`),
		},
		conjunctions: []string{"और", "तथा", "एवं", "व"},
		both:         []string{"दोनों", "सब", "सारे"},
		stopwords:    []string{"को", "में", "का", "की", "के", "से", "पर", "भी", "सब", "सारे", "आज", "मैंने", "मैं", "है", "था", "थी", "ने", "दोनों"},

		redirect:    []string{"दिखाओ", "दिखाइए", "दिखा दो", "खोलो", "खोलिए", "खोल दो", "ले चलो", "ले जाओ", "वेबसाइट", "आवेदन", "अप्लाई", "लिंक"},
		affirmative: []string{"हाँ", "हां", "हा", "जी", "जी हाँ", "जी हां", "ठीक है", "ठीक", "बिल्कुल", "अच्छा", "ज़रूर", "हाँ जी"},

		priority: []priorityWord{
			{"जरूरी नहीं", types.PriorityLow},
			{"ज़रूरी नहीं", types.PriorityLow},
			{"कोई जल्दी नहीं", types.PriorityLow},
			{"बाद में", types.PriorityLow},
			{"आराम से", types.PriorityLow},
			{"बहुत जरूरी", types.PriorityHigh},
			{"बहुत ज़रूरी", types.PriorityHigh},
			{"जरूरी", types.PriorityHigh},
			{"ज़रूरी", types.PriorityHigh},
			{"तुरंत", types.PriorityHigh},
			{"जल्दी", types.PriorityHigh},
			{"अर्जेंट", types.PriorityHigh},
		},
		category: []categoryWord{
			{"पानी", types.CategoryFarming},
			{"सिंचाई", types.CategoryFarming},
			{"फसल", types.CategoryFarming},
			{"खेत", types.CategoryFarming},
			{"मिट्टी", types.CategoryFarming},
			{"कटाई", types.CategoryFarming},
			{"कीटनाशक", types.CategoryFarming},
			{"छिड़काव", types.CategoryFarming},
			{"बीज", types.CategoryFarming},
			{"बुवाई", types.CategoryFarming},
			{"पौध", types.CategoryFarming},
			{"खाद", types.CategoryFarming},
			{"उर्वरक", types.CategoryFarming},
			{"ट्रैक्टर", types.CategoryFarming},
			{"गाय", types.CategoryFarming},
			{"भैंस", types.CategoryFarming},
			{"पशु", types.CategoryFarming},
			{"चारा", types.CategoryFarming},
			{"निराई", types.CategoryFarming},
			{"गेहूं", types.CategoryFarming},
			{"धान", types.CategoryFarming},
			{"मंडी", types.CategoryFarming},
			{"डॉक्टर", types.CategoryPersonal},
			{"अस्पताल", types.CategoryPersonal},
			{"दवा", types.CategoryPersonal},
			{"परिवार", types.CategoryPersonal},
			{"स्वास्थ्य", types.CategoryPersonal},
			{"स्कूल", types.CategoryPersonal},
			{"शादी", types.CategoryPersonal},
			{"जन्मदिन", types.CategoryPersonal},
			{"बाजार", types.CategoryPersonal},
			{"बिल", types.CategoryPersonal},
		},

		schemeWords: []string{"योजना", "योजनाओं", "स्कीम"},
		synonyms: []schemeSynonym{
			{"किसान क्रेडिट कार्ड", "kcc"},
			{"केसीसी", "kcc"},
			{"फसल बीमा", "pmfby"},
			{"किसान सम्मान निधि", "pm-kisan"},
			{"पीएम किसान", "pm-kisan"},
			{"मृदा स्वास्थ्य कार्ड", "soil-health-card"},
			{"सॉयल हेल्थ कार्ड", "soil-health-card"},
			{"मिट्टी जांच", "soil-health-card"},
			{"सोलर पंप", "pm-kusum"},
			{"कुसुम", "pm-kusum"},
			{"ई नाम", "e-nam"},
			{"ऑनलाइन मंडी", "e-nam"},
			{"सिंचाई योजना", "pmksy"},
			{"ड्रिप सिंचाई", "pmksy"},
		},
		wordGroups: []wordGroup{
			{[]string{"किसान", "क्रेडिट"}, "kcc"},
			{[]string{"फसल", "बीमा"}, "pmfby"},
			{[]string{"किसान", "सम्मान"}, "pm-kisan"},
			{[]string{"सोलर", "पंप"}, "pm-kusum"},
			{[]string{"मिट्टी", "कार्ड"}, "soil-health-card"},
		},

		taskMarkers: []string{
			"टास्क जोड़ो", "टास्क जोड़ें", "काम जोड़ो", "जोड़ो", "जोड़ें", "जोड़ दो", "टास्क",
			"रिमाइंडर", "मुझे याद दिलाना", "याद दिलाना", "याद दिलाओ", "याद दिला देना",
			"लिख लो", "नोट करो",
		},
		fillers:   []string{"कृपया", "प्लीज़", "प्लीज", "मेरे लिए", "है", "हैं", "तक"},
		nonTask:   []string{"नमस्ते", "नमस्कार", "राम राम", "धन्यवाद", "शुक्रिया", "नहीं", "अलविदा"},
		questions: []string{"क्या", "कैसे", "क्यों", "कब", "कहाँ", "कहां", "कौन", "कितना", "कितने", "बताओ", "बताइए"},

		dates: []dateWord{
			{"आज", 0, 0},
			{"कल", 1, 0},
			{"परसों", 2, 0},
			{"अगले हफ्ते", 7, 0},
			{"अगले हफ़्ते", 7, 0},
			{"अगले सप्ताह", 7, 0},
			{"अगले महीने", 0, 1},
		},
		units:      []unitWord{{"दिन", 1, 0}, {"हफ्त", 7, 0}, {"हफ़्त", 7, 0}, {"सप्ताह", 7, 0}, {"महीन", 0, 1}},
		weekdays:   devanagariWeekdays,
		weekdayPre: []string{"अगले", "इस"},
		weekdayAft: []string{"को", "तक"},
		partsOfDay: []partOfDay{{"सुबह", 9}, {"दोपहर", 14}, {"शाम", 18}, {"रात", 20}},

		relative: []*regexp.Regexp{
			mustCompile(`(?:^|\s)(?P<n>\d+)\s*(?P<unit>दिन|हफ्ते|हफ़्ते|सप्ताह|महीने)\s*(?:में|बाद)(?:\s|$)`),
		},
		clock: []*regexp.Regexp{
			mustCompile(`(?P<hour>\d{1,2})(?:[:.](?P<min>\d{2}))?\s*बजे`),
		},
	}
}

func kannadaTable() *languageTable {
	return &languageTable{
		lang: types.LanguageKannada,

		completion: []*regexp.Regexp{
			mustCompile(`^(?:ನಾನು\s+)?(?:(?:ಈಗಾಗಲೇ|ಈಗ)\s+)?(?P<activity>.+?)\s+(?:ಮಾಡಿದೆ|ಮಾಡಿದ್ದೇನೆ|ಮುಗಿಸಿದೆ|ಮುಗಿಸಿದ್ದೇನೆ|ಹಾಕಿದೆ|ಹಾಕಿದ್ದೇನೆ|ಕೊಟ್ಟೆ|ಕೊಟ್ಟಿದ್ದೇನೆ|ಆಯಿತು|ಮುಗಿಯಿತು)$`),
		},
		conjunctions: []string{"ಮತ್ತು", "ಹಾಗೂ"},
		both:         []string{"ಎರಡೂ", "ಎಲ್ಲಾ"},
		stopwords:    []string{"ನಾನು", "ಈಗ", "ಈಗಾಗಲೇ", "ಎರಡೂ", "ಎಲ್ಲಾ"},

		redirect:    []string{"ತೋರಿಸು", "ತೋರಿಸಿ", "ತೆರೆ", "ತೆರೆಯಿರಿ", "ಕರೆದುಕೊಂಡು ಹೋಗು", "ಅರ್ಜಿ", "ವೆಬ್‌ಸೈಟ್", "ಲಿಂಕ್"},
		affirmative: []string{"ಹೌದು", "ಸರಿ", "ಆಗಲಿ", "ಓಕೆ", "ಖಂಡಿತ"},

		priority: []priorityWord{
			{"ತುರ್ತು ಇಲ್ಲ", types.PriorityLow},
			{"ನಿಧಾನವಾಗಿ", types.PriorityLow},
			{"ನಂತರ", types.PriorityLow},
			{"ತುರ್ತು", types.PriorityHigh},
			{"ಬೇಗ", types.PriorityHigh},
			{"ಮುಖ್ಯ", types.PriorityHigh},
		},
		category: []categoryWord{
			{"ನೀರು", types.CategoryFarming},
			{"ನೀರಾವರಿ", types.CategoryFarming},
			{"ಬೆಳೆ", types.CategoryFarming},
			{"ಹೊಲ", types.CategoryFarming},
			{"ಗದ್ದೆ", types.CategoryFarming},
			{"ಮಣ್ಣು", types.CategoryFarming},
			{"ಕೊಯ್ಲು", types.CategoryFarming},
			{"ಕೀಟನಾಶಕ", types.CategoryFarming},
			{"ಬೀಜ", types.CategoryFarming},
			{"ಬಿತ್ತನೆ", types.CategoryFarming},
			{"ಗಿಡ", types.CategoryFarming},
			{"ಗೊಬ್ಬರ", types.CategoryFarming},
			{"ಹಸು", types.CategoryFarming},
			{"ಜಾನುವಾರು", types.CategoryFarming},
			{"ವೈದ್ಯ", types.CategoryPersonal},
			{"ಆಸ್ಪತ್ರೆ", types.CategoryPersonal},
			{"ಔಷಧ", types.CategoryPersonal},
			{"ಕುಟುಂಬ", types.CategoryPersonal},
			{"ಆರೋಗ್ಯ", types.CategoryPersonal},
			{"ಶಾಲೆ", types.CategoryPersonal},
			{"ಮದುವೆ", types.CategoryPersonal},
		},

		schemeWords: []string{"ಯೋಜನೆ", "ಸ್ಕೀಮ್"},
		synonyms: []schemeSynonym{
			{"ಕಿಸಾನ್ ಕ್ರೆಡಿಟ್ ಕಾರ್ಡ್", "kcc"},
			{"ಬೆಳೆ ವಿಮೆ", "pmfby"},
			{"ಪಿಎಂ ಕಿಸಾನ್", "pm-kisan"},
			{"ಕಿಸಾನ್ ಸಮ್ಮಾನ್", "pm-kisan"},
			{"ಮಣ್ಣು ಆರೋಗ್ಯ ಕಾರ್ಡ್", "soil-health-card"},
			{"ಸೌರ ಪಂಪ್", "pm-kusum"},
			{"ಕುಸುಮ್", "pm-kusum"},
			{"ಹನಿ ನೀರಾವರಿ", "pmksy"},
		},
		wordGroups: []wordGroup{
			{[]string{"ಕಿಸಾನ್", "ಕ್ರೆಡಿಟ್"}, "kcc"},
			{[]string{"ಬೆಳೆ", "ವಿಮೆ"}, "pmfby"},
			{[]string{"ಸೌರ", "ಪಂಪ್"}, "pm-kusum"},
		},

		taskMarkers: []string{"ಕಾರ್ಯ ಸೇರಿಸಿ", "ಸೇರಿಸಿ", "ಸೇರಿಸು", "ಕಾರ್ಯ", "ನೆನಪಿಸಿ", "ನೆನಪಿಸು", "ಜ್ಞಾಪಿಸು", "ಟಾಸ್ಕ್"},
		fillers:     []string{"ದಯವಿಟ್ಟು", "ನನಗೆ", "ನನಗಾಗಿ"},
		nonTask:     []string{"ನಮಸ್ಕಾರ", "ಧನ್ಯವಾದ", "ಧನ್ಯವಾದಗಳು", "ಇಲ್ಲ"},
		questions:   []string{"ಏನು", "ಹೇಗೆ", "ಯಾಕೆ", "ಯಾವಾಗ", "ಎಲ್ಲಿ", "ಯಾರು", "ಹೇಳಿ"},

		dates: []dateWord{
			{"ಇಂದು", 0, 0},
			{"ಇವತ್ತು", 0, 0},
			{"ನಾಳೆ", 1, 0},
			{"ನಾಡಿದ್ದು", 2, 0},
			{"ಮುಂದಿನ ವಾರ", 7, 0},
			{"ಮುಂದಿನ ತಿಂಗಳು", 0, 1},
		},
		units:      []unitWord{{"ದಿನ", 1, 0}, {"ವಾರ", 7, 0}, {"ತಿಂಗಳ", 0, 1}},
		weekdays:   [7]string{"ಭಾನುವಾರ", "ಸೋಮವಾರ", "ಮಂಗಳವಾರ", "ಬುಧವಾರ", "ಗುರುವಾರ", "ಶುಕ್ರವಾರ", "ಶನಿವಾರ"},
		weekdayPre: []string{"ಮುಂದಿನ", "ಈ"},
		partsOfDay: []partOfDay{{"ಬೆಳಿಗ್ಗೆ", 9}, {"ಮಧ್ಯಾಹ್ನ", 14}, {"ಸಂಜೆ", 18}, {"ರಾತ್ರಿ", 20}},

		relative: []*regexp.Regexp{
			mustCompile(`(?:^|\s)(?P<n>\d+)\s*(?P<unit>ದಿನ|ವಾರ|ತಿಂಗಳ)\S*(?:\s+(?:ನಂತರ|ಬಳಿಕ))?(?:\s|$)`),
		},
		clock: []*regexp.Regexp{
			mustCompile(`(?P<hour>\d{1,2})(?:[:.](?P<min>\d{2}))?\s*ಗಂಟೆ\S*`),
		},
	}
}

func punjabiTable() *languageTable {
	return &languageTable{
		lang: types.LanguagePunjabi,

		completion: []*regexp.Regexp{
			mustCompile(`^(?:ਮੈਂ\s+(?:ਨੇ\s+)?)?(?:(?:ਪਹਿਲਾਂ\s+ਹੀ|ਹੁਣੇ)\s+)?(?P<activity>.+?)\s+(?:ਕਰ\s+(?:ਦਿੱਤਾ|ਦਿੱਤੀ|ਦਿੱਤੇ|ਲਿਆ|ਲਈ|ਲਏ)|ਦੇ\s+(?:ਦਿੱਤਾ|ਦਿੱਤੀ)|ਹੋ\s+(?:ਗਿਆ|ਗਈ|ਗਏ)|ਦਿੱਤਾ|ਦਿੱਤੀ|ਕੀਤਾ|ਕੀਤੀ)(?:\s+ਹੈ)?$`),
		},
		conjunctions: []string{"ਅਤੇ", "ਤੇ"},
		both:         []string{"ਦੋਵੇਂ", "ਸਾਰੇ"},
		stopwords:    []string{"ਨੂੰ", "ਵਿੱਚ", "ਦਾ", "ਦੀ", "ਦੇ", "ਤੋਂ", "ਮੈਂ", "ਨੇ", "ਹੈ", "ਦੋਵੇਂ", "ਸਾਰੇ"},

		redirect:    []string{"ਦਿਖਾਓ", "ਵਿਖਾਓ", "ਖੋਲ੍ਹੋ", "ਖੋਲੋ", "ਲੈ ਚੱਲੋ", "ਅਰਜ਼ੀ", "ਵੈੱਬਸਾਈਟ", "ਲਿੰਕ"},
		affirmative: []string{"ਹਾਂ", "ਹਾਂ ਜੀ", "ਜੀ", "ਠੀਕ ਹੈ", "ਠੀਕ", "ਬਿਲਕੁਲ", "ਜ਼ਰੂਰ"},

		priority: []priorityWord{
			{"ਜ਼ਰੂਰੀ ਨਹੀਂ", types.PriorityLow},
			{"ਜਰੂਰੀ ਨਹੀਂ", types.PriorityLow},
			{"ਬਾਅਦ ਵਿੱਚ", types.PriorityLow},
			{"ਜ਼ਰੂਰੀ", types.PriorityHigh},
			{"ਜਰੂਰੀ", types.PriorityHigh},
			{"ਤੁਰੰਤ", types.PriorityHigh},
			{"ਛੇਤੀ", types.PriorityHigh},
		},
		category: []categoryWord{
			{"ਪਾਣੀ", types.CategoryFarming},
			{"ਸਿੰਚਾਈ", types.CategoryFarming},
			{"ਫ਼ਸਲ", types.CategoryFarming},
			{"ਫਸਲ", types.CategoryFarming},
			{"ਖੇਤ", types.CategoryFarming},
			{"ਮਿੱਟੀ", types.CategoryFarming},
			{"ਵਾਢੀ", types.CategoryFarming},
			{"ਕੀਟਨਾਸ਼ਕ", types.CategoryFarming},
			{"ਸਪਰੇਅ", types.CategoryFarming},
			{"ਬੀਜ", types.CategoryFarming},
			{"ਬਿਜਾਈ", types.CategoryFarming},
			{"ਖਾਦ", types.CategoryFarming},
			{"ਟਰੈਕਟਰ", types.CategoryFarming},
			{"ਗਾਂ", types.CategoryFarming},
			{"ਮੱਝ", types.CategoryFarming},
			{"ਪਸ਼ੂ", types.CategoryFarming},
			{"ਕਣਕ", types.CategoryFarming},
			{"ਝੋਨਾ", types.CategoryFarming},
			{"ਡਾਕਟਰ", types.CategoryPersonal},
			{"ਹਸਪਤਾਲ", types.CategoryPersonal},
			{"ਦਵਾਈ", types.CategoryPersonal},
			{"ਪਰਿਵਾਰ", types.CategoryPersonal},
			{"ਸਿਹਤ", types.CategoryPersonal},
			{"ਸਕੂਲ", types.CategoryPersonal},
			{"ਵਿਆਹ", types.CategoryPersonal},
		},

		schemeWords: []string{"ਯੋਜਨਾ", "ਸਕੀਮ"},
		synonyms: []schemeSynonym{
			{"ਕਿਸਾਨ ਕ੍ਰੈਡਿਟ ਕਾਰਡ", "kcc"},
			{"ਫ਼ਸਲ ਬੀਮਾ", "pmfby"},
			{"ਫਸਲ ਬੀਮਾ", "pmfby"},
			{"ਪੀਐਮ ਕਿਸਾਨ", "pm-kisan"},
			{"ਕਿਸਾਨ ਸਨਮਾਨ", "pm-kisan"},
			{"ਮਿੱਟੀ ਸਿਹਤ ਕਾਰਡ", "soil-health-card"},
			{"ਸੋਲਰ ਪੰਪ", "pm-kusum"},
			{"ਤੁਪਕਾ ਸਿੰਚਾਈ", "pmksy"},
		},
		wordGroups: []wordGroup{
			{[]string{"ਕਿਸਾਨ", "ਕ੍ਰੈਡਿਟ"}, "kcc"},
			{[]string{"ਫਸਲ", "ਬੀਮਾ"}, "pmfby"},
			{[]string{"ਸੋਲਰ", "ਪੰਪ"}, "pm-kusum"},
		},

		taskMarkers: []string{"ਕੰਮ ਜੋੜੋ", "ਜੋੜੋ", "ਜੋੜ ਦਿਓ", "ਟਾਸਕ", "ਯਾਦ ਕਰਾਓ", "ਯਾਦ ਕਰਵਾਓ", "ਯਾਦ ਦਿਵਾਓ", "ਰਿਮਾਈਂਡਰ"},
		fillers:     []string{"ਕਿਰਪਾ ਕਰਕੇ", "ਮੇਰੇ ਲਈ", "ਹੈ", "ਤੱਕ"},
		nonTask:     []string{"ਸਤ ਸ੍ਰੀ ਅਕਾਲ", "ਧੰਨਵਾਦ", "ਨਹੀਂ"},
		questions:   []string{"ਕੀ", "ਕਿਵੇਂ", "ਕਿਉਂ", "ਕਦੋਂ", "ਕਿੱਥੇ", "ਕੌਣ", "ਦੱਸੋ"},

		dates: []dateWord{
			{"ਅੱਜ", 0, 0},
			{"ਕੱਲ੍ਹ", 1, 0},
			{"ਕੱਲ", 1, 0},
			{"ਪਰਸੋਂ", 2, 0},
			{"ਅਗਲੇ ਹਫ਼ਤੇ", 7, 0},
			{"ਅਗਲੇ ਹਫਤੇ", 7, 0},
			{"ਅਗਲੇ ਮਹੀਨੇ", 0, 1},
		},
		units:      []unitWord{{"ਦਿਨ", 1, 0}, {"ਹਫ਼ਤ", 7, 0}, {"ਹਫਤ", 7, 0}, {"ਮਹੀਨ", 0, 1}},
		weekdays:   [7]string{"ਐਤਵਾਰ", "ਸੋਮਵਾਰ", "ਮੰਗਲਵਾਰ", "ਬੁੱਧਵਾਰ", "ਵੀਰਵਾਰ", "ਸ਼ੁੱਕਰਵਾਰ", "ਸ਼ਨੀਵਾਰ"},
		weekdayPre: []string{"ਅਗਲੇ"},
		weekdayAft: []string{"ਨੂੰ"},
		partsOfDay: []partOfDay{{"ਸਵੇਰੇ", 9}, {"ਸਵੇਰ", 9}, {"ਦੁਪਹਿਰ", 14}, {"ਸ਼ਾਮ", 18}, {"ਰਾਤ", 20}},

		relative: []*regexp.Regexp{
			mustCompile(`(?:^|\s)(?P<n>\d+)\s*(?P<unit>ਦਿਨ|ਹਫ਼ਤ|ਹਫਤ|ਮਹੀਨ)\S*(?:\s+(?:ਵਿੱਚ|ਬਾਅਦ))?(?:\s|$)`),
		},
		clock: []*regexp.Regexp{
			mustCompile(`(?P<hour>\d{1,2})(?:[:.](?P<min>\d{2}))?\s*ਵਜੇ`),
		},
	}
}

func marathiTable() *languageTable {
	return &languageTable{
		lang: types.LanguageMarathi,

		completion: []*regexp.Regexp{
			mustCompile(`^(?:मी\s+)?(?:(?:आधीच|आत्ताच|आज)\s+)?(?P<activity>.+?)\s+(?:पूर्ण\s+)?(?:केले|केलं|केली|केला|दिले|दिलं|दिली|दिला|टाकले|टाकलं|झाले|झालं|झाली|झाला)(?:\s+आहे)?$`),
		},
		conjunctions: []string{"आणि", "व"},
		both:         []string{"दोन्ही", "सगळे"},
		stopwords:    []string{"मी", "ला", "ना", "चे", "ची", "चा", "मध्ये", "आहे", "आज", "दोन्ही", "सगळे"},

		redirect:    []string{"दाखवा", "दाखव", "उघडा", "उघड", "घेऊन चला", "अर्ज", "वेबसाइट", "लिंक"},
		affirmative: []string{"होय", "हो", "हो ना", "ठीक आहे", "ठीक", "बरं", "नक्की", "चालेल"},

		priority: []priorityWord{
			{"तातडीचे नाही", types.PriorityLow},
			{"नंतर", types.PriorityLow},
			{"सावकाश", types.PriorityLow},
			{"तातडीचे", types.PriorityHigh},
			{"तातडीने", types.PriorityHigh},
			{"महत्वाचे", types.PriorityHigh},
			{"लगेच", types.PriorityHigh},
			{"लवकर", types.PriorityHigh},
		},
		category: []categoryWord{
			{"पाणी", types.CategoryFarming},
			{"सिंचन", types.CategoryFarming},
			{"पीक", types.CategoryFarming},
			{"शेत", types.CategoryFarming},
			{"माती", types.CategoryFarming},
			{"कापणी", types.CategoryFarming},
			{"कीटकनाशक", types.CategoryFarming},
			{"फवारणी", types.CategoryFarming},
			{"बियाणे", types.CategoryFarming},
			{"पेरणी", types.CategoryFarming},
			{"रोप", types.CategoryFarming},
			{"खत", types.CategoryFarming},
			{"ट्रॅक्टर", types.CategoryFarming},
			{"गाय", types.CategoryFarming},
			{"म्हैस", types.CategoryFarming},
			{"जनावर", types.CategoryFarming},
			{"डॉक्टर", types.CategoryPersonal},
			{"दवाखाना", types.CategoryPersonal},
			{"रुग्णालय", types.CategoryPersonal},
			{"औषध", types.CategoryPersonal},
			{"कुटुंब", types.CategoryPersonal},
			{"आरोग्य", types.CategoryPersonal},
			{"शाळा", types.CategoryPersonal},
			{"लग्न", types.CategoryPersonal},
		},

		schemeWords: []string{"योजना", "योजनेच", "स्कीम"},
		synonyms: []schemeSynonym{
			{"किसान क्रेडिट कार्ड", "kcc"},
			{"पीक विमा", "pmfby"},
			{"पीएम किसान", "pm-kisan"},
			{"किसान सन्मान निधी", "pm-kisan"},
			{"मृदा आरोग्य पत्रिका", "soil-health-card"},
			{"माती परीक्षण", "soil-health-card"},
			{"सौर पंप", "pm-kusum"},
			{"ठिबक सिंचन", "pmksy"},
		},
		wordGroups: []wordGroup{
			{[]string{"किसान", "क्रेडिट"}, "kcc"},
			{[]string{"पीक", "विमा"}, "pmfby"},
			{[]string{"सौर", "पंप"}, "pm-kusum"},
		},

		taskMarkers: []string{"काम जोडा", "टास्क जोडा", "जोडा", "टास्क", "आठवण करून द्या", "आठवण करून दे", "आठवण", "रिमाइंडर", "नोंद करा"},
		fillers:     []string{"कृपया", "माझ्यासाठी", "आहे", "पर्यंत"},
		nonTask:     []string{"नमस्कार", "धन्यवाद", "नाही", "राम राम"},
		questions:   []string{"काय", "कसे", "कसं", "कधी", "कुठे", "कोण", "सांगा"},

		dates: []dateWord{
			{"आज", 0, 0},
			{"उद्या", 1, 0},
			{"परवा", 2, 0},
			{"पुढच्या आठवड्यात", 7, 0},
			{"पुढील आठवड्यात", 7, 0},
			{"पुढच्या महिन्यात", 0, 1},
		},
		units:      []unitWord{{"दिवस", 1, 0}, {"आठवड", 7, 0}, {"महिन", 0, 1}},
		weekdays:   devanagariWeekdays,
		weekdayPre: []string{"पुढच्या", "या"},
		partsOfDay: []partOfDay{{"सकाळी", 9}, {"दुपारी", 14}, {"संध्याकाळी", 18}, {"रात्री", 20}},

		relative: []*regexp.Regexp{
			mustCompile(`(?:^|\s)(?P<n>\d+)\s*(?P<unit>दिवस|आठवड|महिन)\S*(?:\s+(?:नंतर|मध्ये))?(?:\s|$)`),
		},
		clock: []*regexp.Regexp{
			mustCompile(`(?P<hour>\d{1,2})(?:[:.](?P<min>\d{2}))?\s*वाज\S*`),
		},
	}
}

func gujaratiTable() *languageTable {
	return &languageTable{
		lang: types.LanguageGujarati,

		completion: []*regexp.Regexp{
			mustCompile(`^(?:મેં\s+)?(?:(?:હમણાં\s+જ|પહેલેથી\s+જ)\s+)?(?P<activity>.+?)\s+(?:કરી\s+(?:દીધું|લીધું|દીધી|લીધી|દીધા)|આપી\s+(?:દીધું|દીધી)|થઈ\s+(?:ગયું|ગઈ|ગયા)|પૂરું\s+કર્યું|કર્યું|કરી|આપ્યું|નાખ્યું)(?:\s+છે)?$`),
		},
		conjunctions: []string{"અને", "તથા"},
		both:         []string{"બંને", "બધા"},
		stopwords:    []string{"મેં", "ને", "માં", "નું", "ની", "નો", "છે", "બંને", "બધા"},

		redirect:    []string{"બતાવો", "બતાવ", "ખોલો", "લઈ જાઓ", "અરજી", "વેબસાઇટ", "લિંક"},
		affirmative: []string{"હા", "હાં", "હા જી", "બરાબર", "ઠીક છે", "ચોક્કસ", "સારું"},

		priority: []priorityWord{
			{"જરૂરી નથી", types.PriorityLow},
			{"પછી", types.PriorityLow},
			{"આરામથી", types.PriorityLow},
			{"તાત્કાલિક", types.PriorityHigh},
			{"જરૂરી", types.PriorityHigh},
			{"ઝડપથી", types.PriorityHigh},
			{"હમણાં", types.PriorityHigh},
		},
		category: []categoryWord{
			{"પાણી", types.CategoryFarming},
			{"સિંચાઈ", types.CategoryFarming},
			{"પાક", types.CategoryFarming},
			{"ખેતર", types.CategoryFarming},
			{"માટી", types.CategoryFarming},
			{"લણણી", types.CategoryFarming},
			{"જંતુનાશક", types.CategoryFarming},
			{"છંટકાવ", types.CategoryFarming},
			{"બીજ", types.CategoryFarming},
			{"વાવણી", types.CategoryFarming},
			{"છોડ", types.CategoryFarming},
			{"ખાતર", types.CategoryFarming},
			{"ટ્રેક્ટર", types.CategoryFarming},
			{"ગાય", types.CategoryFarming},
			{"ભેંસ", types.CategoryFarming},
			{"પશુ", types.CategoryFarming},
			{"ડૉક્ટર", types.CategoryPersonal},
			{"ડોક્ટર", types.CategoryPersonal},
			{"હોસ્પિટલ", types.CategoryPersonal},
			{"દવા", types.CategoryPersonal},
			{"પરિવાર", types.CategoryPersonal},
			{"આરોગ્ય", types.CategoryPersonal},
			{"શાળા", types.CategoryPersonal},
			{"લગ્ન", types.CategoryPersonal},
		},

		schemeWords: []string{"યોજના", "સ્કીમ"},
		synonyms: []schemeSynonym{
			{"કિસાન ક્રેડિટ કાર્ડ", "kcc"},
			{"પાક વીમો", "pmfby"},
			{"પાક વીમા", "pmfby"},
			{"પીએમ કિસાન", "pm-kisan"},
			{"કિસાન સન્માન", "pm-kisan"},
			{"જમીન આરોગ્ય કાર્ડ", "soil-health-card"},
			{"સોલર પંપ", "pm-kusum"},
			{"ટપક સિંચાઈ", "pmksy"},
		},
		wordGroups: []wordGroup{
			{[]string{"કિસાન", "ક્રેડિટ"}, "kcc"},
			{[]string{"પાક", "વીમ"}, "pmfby"},
			{[]string{"સોલર", "પંપ"}, "pm-kusum"},
		},

		taskMarkers: []string{"કાર્ય ઉમેરો", "ઉમેરો", "ટાસ્ક", "યાદ અપાવો", "યાદ કરાવો", "રિમાઇન્ડર", "નોંધ કરો"},
		fillers:     []string{"કૃપા કરીને", "મારા માટે", "છે", "સુધી"},
		nonTask:     []string{"નમસ્તે", "આભાર", "ના", "જય શ્રી કૃષ્ણ"},
		questions:   []string{"શું", "કેવી રીતે", "કેમ", "ક્યારે", "ક્યાં", "કોણ", "કહો"},

		dates: []dateWord{
			{"આજે", 0, 0},
			{"આજ", 0, 0},
			{"કાલે", 1, 0},
			{"કાલ", 1, 0},
			{"પરમદિવસે", 2, 0},
			{"પરમ દિવસે", 2, 0},
			{"આવતા અઠવાડિયે", 7, 0},
			{"આવતા મહિને", 0, 1},
		},
		units:      []unitWord{{"દિવસ", 1, 0}, {"અઠવાડિ", 7, 0}, {"મહિન", 0, 1}},
		weekdays:   [7]string{"રવિવાર", "સોમવાર", "મંગળવાર", "બુધવાર", "ગુરુવાર", "શુક્રવાર", "શનિવાર"},
		weekdayPre: []string{"આવતા", "આ"},
		partsOfDay: []partOfDay{{"સવારે", 9}, {"બપોરે", 14}, {"સાંજે", 18}, {"રાત્રે", 20}},

		relative: []*regexp.Regexp{
			mustCompile(`(?:^|\s)(?P<n>\d+)\s*(?P<unit>દિવસ|અઠવાડિ|મહિન)\S*(?:\s+(?:માં|પછી))?(?:\s|$)`),
		},
		clock: []*regexp.Regexp{
			mustCompile(`(?P<hour>\d{1,2})(?:[:.](?P<min>\d{2}))?\s*વાગ્\S*`),
		},
	}
}

func bengaliTable() *languageTable {
	return &languageTable{
		lang: types.LanguageBengali,

		completion: []*regexp.Regexp{
			mustCompile(`^(?:আমি\s+)?(?:(?:এইমাত্র|আগেই|আজ)\s+)?(?P<activity>.+?)\s+(?:করে\s+(?:ফেলেছি|দিয়েছি)|দিয়ে\s+দিয়েছি|হয়ে\s+গেছে|শেষ\s+করেছি|করেছি|দিয়েছি|সেরেছি)$`),
		},
		conjunctions: []string{"এবং", "আর", "ও"},
		both:         []string{"দুটোই", "সব"},
		stopwords:    []string{"আমি", "কে", "তে", "এর", "আজ", "দুটোই", "সব"},

		redirect:    []string{"দেখাও", "দেখান", "খোলো", "খুলুন", "নিয়ে চলো", "আবেদন", "ওয়েবসাইট", "লিংক"},
		affirmative: []string{"হ্যাঁ", "হাঁ", "হ্যাঁ হ্যাঁ", "ঠিক আছে", "আচ্ছা", "অবশ্যই", "বেশ"},

		priority: []priorityWord{
			{"জরুরি নয়", types.PriorityLow},
			{"পরে", types.PriorityLow},
			{"ধীরে", types.PriorityLow},
			{"জরুরি", types.PriorityHigh},
			{"এখনই", types.PriorityHigh},
			{"তাড়াতাড়ি", types.PriorityHigh},
			{"গুরুত্বপূর্ণ", types.PriorityHigh},
		},
		category: []categoryWord{
			{"জল", types.CategoryFarming},
			{"সেচ", types.CategoryFarming},
			{"ফসল", types.CategoryFarming},
			{"খেত", types.CategoryFarming},
			{"ক্ষেত", types.CategoryFarming},
			{"মাটি", types.CategoryFarming},
			{"কীটনাশক", types.CategoryFarming},
			{"স্প্রে", types.CategoryFarming},
			{"বীজ", types.CategoryFarming},
			{"বপন", types.CategoryFarming},
			{"চারা", types.CategoryFarming},
			{"সার", types.CategoryFarming},
			{"ট্রাক্টর", types.CategoryFarming},
			{"গরু", types.CategoryFarming},
			{"গবাদি", types.CategoryFarming},
			{"ধান", types.CategoryFarming},
			{"ডাক্তার", types.CategoryPersonal},
			{"হাসপাতাল", types.CategoryPersonal},
			{"ওষুধ", types.CategoryPersonal},
			{"পরিবার", types.CategoryPersonal},
			{"স্বাস্থ্য", types.CategoryPersonal},
			{"স্কুল", types.CategoryPersonal},
			{"বিয়ে", types.CategoryPersonal},
		},

		schemeWords: []string{"প্রকল্প", "যোজনা", "স্কিম"},
		synonyms: []schemeSynonym{
			{"কিষাণ ক্রেডিট কার্ড", "kcc"},
			{"কিসান ক্রেডিট কার্ড", "kcc"},
			{"ফসল বীমা", "pmfby"},
			{"পিএম কিষাণ", "pm-kisan"},
			{"কিষাণ সম্মান", "pm-kisan"},
			{"মৃত্তিকা স্বাস্থ্য কার্ড", "soil-health-card"},
			{"সৌর পাম্প", "pm-kusum"},
			{"ড্রিপ সেচ", "pmksy"},
		},
		wordGroups: []wordGroup{
			{[]string{"ক্রেডিট", "কার্ড"}, "kcc"},
			{[]string{"ফসল", "বীমা"}, "pmfby"},
			{[]string{"সৌর", "পাম্প"}, "pm-kusum"},
		},

		taskMarkers: []string{"কাজ যোগ করো", "যোগ করো", "যোগ করুন", "টাস্ক", "মনে করিয়ে দাও", "মনে করিয়ে দিন", "রিমাইন্ডার", "লিখে রাখো"},
		fillers:     []string{"দয়া করে", "অনুগ্রহ করে", "আমার জন্য"},
		nonTask:     []string{"নমস্কার", "ধন্যবাদ", "না"},
		questions:   []string{"কী", "কি", "কেমন", "কেন", "কখন", "কোথায়", "কে", "বলুন"},

		dates: []dateWord{
			{"আজ", 0, 0},
			{"আজকে", 0, 0},
			{"আগামীকাল", 1, 0},
			{"কাল", 1, 0},
			{"কালকে", 1, 0},
			{"পরশু", 2, 0},
			{"আগামী সপ্তাহে", 7, 0},
			{"পরের সপ্তাহে", 7, 0},
			{"আগামী মাসে", 0, 1},
		},
		units:      []unitWord{{"দিন", 1, 0}, {"সপ্তাহ", 7, 0}, {"মাস", 0, 1}},
		weekdays:   [7]string{"রবিবার", "সোমবার", "মঙ্গলবার", "বুধবার", "বৃহস্পতিবার", "শুক্রবার", "শনিবার"},
		weekdayPre: []string{"আগামী", "এই"},
		partsOfDay: []partOfDay{{"সকালে", 9}, {"দুপুরে", 14}, {"বিকেলে", 16}, {"সন্ধ্যায়", 18}, {"রাতে", 20}},

		relative: []*regexp.Regexp{
			mustCompile(`(?:^|\s)(?P<n>\d+)\s*(?P<unit>দিন|সপ্তাহ|মাস)\S*(?:\s+(?:পরে|মধ্যে))?(?:\s|$)`),
		},
		clock: []*regexp.Regexp{
			mustCompile(`(?P<hour>\d{1,2})(?:[:.](?P<min>\d{2}))?\s*(?:টায়|টার|টা)`),
		},
	}
}
