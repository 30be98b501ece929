package articulation

import "krishimitra/internal/types"

// phrasebook holds the reply templates for one language. Scheme replies
// must quote the title and use the language's word for "scheme" so the
// next turn can resolve a bare "yes" back to it.
type phrasebook struct {
	created       string // title, due
	createdNoDue  string // title
	due           string // date, time
	dueDateOnly   string // date
	completed     string // title
	completedID   string // id
	schemeInfo    string // title, description, yes-word
	schemeOpen    string // title, url
	schemeNoURL   string // title, description
	duplicate     string // title
	noMatch       string // activity
	notUnderstood string
	nothing       string
	yes           string
}

var phrasebooks = map[types.Language]phrasebook{
	types.LanguageEnglish: {
		created:       `Added "%s" %s.`,
		createdNoDue:  `Added "%s".`,
		due:           "for %s at %s",
		dueDateOnly:   "for %s",
		completed:     `Marked "%s" as done.`,
		completedID:   "Marked task %s as done.",
		schemeInfo:    `About "%s" scheme: %s Say "%s" to open it.`,
		schemeOpen:    `Opening "%s" scheme: %s`,
		schemeNoURL:   `About "%s" scheme: %s`,
		duplicate:     `"%s" is already on your list.`,
		noMatch:       `I could not find a pending task for "%s".`,
		notUnderstood: "Sorry, I did not understand. You can add a task, mark one done, or ask about a scheme.",
		nothing:       "Nothing to do.",
		yes:           "yes",
	},
	types.LanguageHindi: {
		created:       `"%s" जोड़ दिया %s।`,
		createdNoDue:  `"%s" जोड़ दिया।`,
		due:           "%s को %s बजे के लिए",
		dueDateOnly:   "%s के लिए",
		completed:     `"%s" पूरा हो गया।`,
		completedID:   "काम %s पूरा हो गया।",
		schemeInfo:    `"%s" योजना के बारे में: %s खोलने के लिए "%s" कहें।`,
		schemeOpen:    `"%s" योजना खोल रहे हैं: %s`,
		schemeNoURL:   `"%s" योजना के बारे में: %s`,
		duplicate:     `"%s" पहले से आपकी सूची में है।`,
		noMatch:       `"%s" का कोई बाकी काम नहीं मिला।`,
		notUnderstood: "माफ़ कीजिए, समझ नहीं आया। आप काम जोड़ सकते हैं, काम पूरा कर सकते हैं या किसी योजना के बारे में पूछ सकते हैं।",
		nothing:       "कुछ करने को नहीं है।",
		yes:           "हाँ",
	},
	types.LanguageKannada: {
		created:       `"%s" ಸೇರಿಸಲಾಗಿದೆ %s.`,
		createdNoDue:  `"%s" ಸೇರಿಸಲಾಗಿದೆ.`,
		due:           "%s ರಂದು %s ಕ್ಕೆ",
		dueDateOnly:   "%s ರಂದು",
		completed:     `"%s" ಮುಗಿದಿದೆ.`,
		completedID:   "ಕೆಲಸ %s ಮುಗಿದಿದೆ.",
		schemeInfo:    `"%s" ಯೋಜನೆ ಬಗ್ಗೆ: %s ತೆರೆಯಲು "%s" ಎನ್ನಿ.`,
		schemeOpen:    `"%s" ಯೋಜನೆ ತೆರೆಯಲಾಗುತ್ತಿದೆ: %s`,
		schemeNoURL:   `"%s" ಯೋಜನೆ ಬಗ್ಗೆ: %s`,
		duplicate:     `"%s" ಈಗಾಗಲೇ ನಿಮ್ಮ ಪಟ್ಟಿಯಲ್ಲಿದೆ.`,
		noMatch:       `"%s" ಗೆ ಬಾಕಿ ಕೆಲಸ ಸಿಗಲಿಲ್ಲ.`,
		notUnderstood: "ಕ್ಷಮಿಸಿ, ಅರ್ಥವಾಗಲಿಲ್ಲ. ನೀವು ಕೆಲಸ ಸೇರಿಸಬಹುದು, ಮುಗಿಸಬಹುದು ಅಥವಾ ಯೋಜನೆ ಬಗ್ಗೆ ಕೇಳಬಹುದು.",
		nothing:       "ಮಾಡಲು ಏನೂ ಇಲ್ಲ.",
		yes:           "ಹೌದು",
	},
	types.LanguagePunjabi: {
		created:       `"%s" ਜੋੜ ਦਿੱਤਾ %s।`,
		createdNoDue:  `"%s" ਜੋੜ ਦਿੱਤਾ।`,
		due:           "%s ਨੂੰ %s ਵਜੇ ਲਈ",
		dueDateOnly:   "%s ਲਈ",
		completed:     `"%s" ਪੂਰਾ ਹੋ ਗਿਆ।`,
		completedID:   "ਕੰਮ %s ਪੂਰਾ ਹੋ ਗਿਆ।",
		schemeInfo:    `"%s" ਯੋਜਨਾ ਬਾਰੇ: %s ਖੋਲ੍ਹਣ ਲਈ "%s" ਕਹੋ।`,
		schemeOpen:    `"%s" ਯੋਜਨਾ ਖੋਲ੍ਹ ਰਹੇ ਹਾਂ: %s`,
		schemeNoURL:   `"%s" ਯੋਜਨਾ ਬਾਰੇ: %s`,
		duplicate:     `"%s" ਪਹਿਲਾਂ ਹੀ ਤੁਹਾਡੀ ਸੂਚੀ ਵਿੱਚ ਹੈ।`,
		noMatch:       `"%s" ਲਈ ਕੋਈ ਬਾਕੀ ਕੰਮ ਨਹੀਂ ਮਿਲਿਆ।`,
		notUnderstood: "ਮਾਫ਼ ਕਰਨਾ, ਸਮਝ ਨਹੀਂ ਆਇਆ। ਤੁਸੀਂ ਕੰਮ ਜੋੜ ਸਕਦੇ ਹੋ, ਪੂਰਾ ਕਰ ਸਕਦੇ ਹੋ ਜਾਂ ਕਿਸੇ ਯੋਜਨਾ ਬਾਰੇ ਪੁੱਛ ਸਕਦੇ ਹੋ।",
		nothing:       "ਕਰਨ ਲਈ ਕੁਝ ਨਹੀਂ।",
		yes:           "ਹਾਂ",
	},
	types.LanguageMarathi: {
		created:       `"%s" जोडले %s.`,
		createdNoDue:  `"%s" जोडले.`,
		due:           "%s रोजी %s वाजता",
		dueDateOnly:   "%s रोजी",
		completed:     `"%s" पूर्ण झाले.`,
		completedID:   "काम %s पूर्ण झाले.",
		schemeInfo:    `"%s" योजना माहिती: %s उघडण्यासाठी "%s" म्हणा.`,
		schemeOpen:    `"%s" योजना उघडत आहोत: %s`,
		schemeNoURL:   `"%s" योजना माहिती: %s`,
		duplicate:     `"%s" आधीच तुमच्या यादीत आहे.`,
		noMatch:       `"%s" साठी कोणतेही बाकी काम सापडले नाही.`,
		notUnderstood: "माफ करा, समजले नाही. तुम्ही काम जोडू शकता, पूर्ण करू शकता किंवा योजनेबद्दल विचारू शकता.",
		nothing:       "काही करायचे नाही.",
		yes:           "होय",
	},
	types.LanguageGujarati: {
		created:       `"%s" ઉમેર્યું %s.`,
		createdNoDue:  `"%s" ઉમેર્યું.`,
		due:           "%s ના રોજ %s વાગ્યે",
		dueDateOnly:   "%s ના રોજ",
		completed:     `"%s" પૂરું થયું.`,
		completedID:   "કામ %s પૂરું થયું.",
		schemeInfo:    `"%s" યોજના વિશે: %s ખોલવા માટે "%s" કહો.`,
		schemeOpen:    `"%s" યોજના ખોલી રહ્યા છીએ: %s`,
		schemeNoURL:   `"%s" યોજના વિશે: %s`,
		duplicate:     `"%s" પહેલેથી તમારી યાદીમાં છે.`,
		noMatch:       `"%s" માટે કોઈ બાકી કામ મળ્યું નહીં.`,
		notUnderstood: "માફ કરશો, સમજાયું નહીં. તમે કામ ઉમેરી શકો, પૂરું કરી શકો અથવા યોજના વિશે પૂછી શકો.",
		nothing:       "કરવાનું કંઈ નથી.",
		yes:           "હા",
	},
	types.LanguageBengali: {
		created:       `"%s" যোগ করা হয়েছে %s।`,
		createdNoDue:  `"%s" যোগ করা হয়েছে।`,
		due:           "%s তারিখে %s টায়",
		dueDateOnly:   "%s তারিখে",
		completed:     `"%s" সম্পন্ন হয়েছে।`,
		completedID:   "কাজ %s সম্পন্ন হয়েছে।",
		schemeInfo:    `"%s" প্রকল্প সম্পর্কে: %s খুলতে "%s" বলুন।`,
		schemeOpen:    `"%s" প্রকল্প খোলা হচ্ছে: %s`,
		schemeNoURL:   `"%s" প্রকল্প সম্পর্কে: %s`,
		duplicate:     `"%s" ইতিমধ্যে আপনার তালিকায় আছে।`,
		noMatch:       `"%s" এর জন্য কোনো বাকি কাজ পাওয়া যায়নি।`,
		notUnderstood: "দুঃখিত, বুঝতে পারিনি। আপনি কাজ যোগ করতে, কাজ শেষ করতে বা কোনো প্রকল্প সম্পর্কে জানতে পারেন।",
		nothing:       "কিছু করার নেই।",
		yes:           "হ্যাঁ",
	},
}
