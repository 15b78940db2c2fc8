// Package i18n holds the static language table and UI translation strings.
// Two locales are supported: English (the fallback) and Hindi.
package i18n

// Default is the language assumed when a session has no preference.
const Default = "en"

// Language describes a supported UI language and its speech synthesis voice.
type Language struct {
	Code     string // session language code
	Name     string // native display name
	TTSCode  string // BCP-47 code for speech synthesis
	TTSVoice string // fixed synthesis voice
}

// Languages maps session language codes to their settings.
var Languages = map[string]Language{
	"en": {
		Code:     "en",
		Name:     "English",
		TTSCode:  "en-US",
		TTSVoice: "en-US-Neural2-C",
	},
	"hi": {
		Code:     "hi",
		Name:     "हिंदी",
		TTSCode:  "hi-IN",
		TTSVoice: "hi-IN-Neural2-A",
	},
}

// Supported reports whether code names a supported language.
func Supported(code string) bool {
	_, ok := Languages[code]
	return ok
}

var translations = map[string]map[string]string{
	"en": {
		"app_title":         "Legal Clarity",
		"tagline":           "Understand any legal document in plain language.",
		"dashboard":         "Dashboard",
		"login":             "Log In",
		"logout":            "Log Out",
		"register":          "Register",
		"username":          "Username",
		"password":          "Password",
		"analyze_document":  "Analyze Document",
		"upload_document":   "Upload Document",
		"paste_text":        "Paste Text",
		"summary":           "Summary",
		"listen":            "Listen",
		"my_documents":      "My Documents",
		"no_documents":      "No documents analyzed yet.",
		"document_analysis": "Document Analysis",
		"important_clauses": "Important Clauses",
		"language":          "Language",

		"flash_registered":        "Registration successful. Please log in.",
		"flash_duplicate_user":    "Username already exists.",
		"flash_invalid_login":     "Invalid username or password.",
		"flash_logged_out":        "You have been logged out successfully.",
		"flash_login_required":    "Please log in to access this page.",
		"flash_missing_fields":    "Username and password are required.",
		"flash_document_missing":  "Document not found or access denied.",

		"error_no_text":           "No text provided",
		"error_no_input":          "No document or text provided",
		"error_too_short":         "Document text is too short for analysis",
		"error_unsupported_file":  "Only PNG, JPG, and JPEG files are allowed",
		"error_no_text_found":     "Could not extract text from the image",
		"error_extraction_failed": "Failed to process the image",
		"error_ocr_unavailable":   "Text extraction is not configured. Please set up Google Cloud credentials.",
		"error_analysis_failed":   "AI analysis failed",
		"error_save_failed":       "Could not save to database",
		"error_tts_unavailable":   "Text-to-Speech API not configured. Please set up Google Cloud credentials.",
		"error_tts_failed":        "Speech synthesis failed",
		"error_unauthorized":      "Authentication required",
		"error_unexpected":        "An unexpected error occurred",
	},
	"hi": {
		"app_title":         "कानूनी स्पष्टता",
		"tagline":           "किसी भी कानूनी दस्तावेज़ को सरल भाषा में समझें।",
		"dashboard":         "डैशबोर्ड",
		"login":             "लॉग इन",
		"logout":            "लॉग आउट",
		"register":          "पंजीकरण",
		"username":          "उपयोगकर्ता नाम",
		"password":          "पासवर्ड",
		"analyze_document":  "दस्तावेज़ का विश्लेषण",
		"upload_document":   "दस्तावेज़ अपलोड करें",
		"paste_text":        "टेक्स्ट पेस्ट करें",
		"summary":           "सारांश",
		"listen":            "सुनें",
		"my_documents":      "मेरे दस्तावेज़",
		"no_documents":      "अभी तक कोई दस्तावेज़ का विश्लेषण नहीं किया गया।",
		"document_analysis": "दस्तावेज़ विश्लेषण",
		"important_clauses": "महत्वपूर्ण खंड",
		"language":          "भाषा",

		"flash_registered":        "पंजीकरण सफल। कृपया लॉग इन करें।",
		"flash_duplicate_user":    "उपयोगकर्ता नाम पहले से मौजूद है।",
		"flash_invalid_login":     "अमान्य उपयोगकर्ता नाम या पासवर्ड।",
		"flash_logged_out":        "आप सफलतापूर्वक लॉग आउट हो गए हैं।",
		"flash_login_required":    "कृपया इस पृष्ठ तक पहुँचने के लिए लॉग इन करें।",
		"flash_missing_fields":    "उपयोगकर्ता नाम और पासवर्ड आवश्यक हैं।",
		"flash_document_missing":  "दस्तावेज़ नहीं मिला या पहुँच अस्वीकृत।",

		"error_no_text":           "कोई टेक्स्ट प्रदान नहीं किया गया",
		"error_no_input":          "कोई दस्तावेज़ या टेक्स्ट प्रदान नहीं किया गया",
		"error_too_short":         "विश्लेषण के लिए दस्तावेज़ का टेक्स्ट बहुत छोटा है",
		"error_unsupported_file":  "केवल PNG, JPG और JPEG फ़ाइलों की अनुमति है",
		"error_no_text_found":     "छवि से टेक्स्ट नहीं निकाला जा सका",
		"error_extraction_failed": "छवि संसाधित करने में विफल",
		"error_ocr_unavailable":   "टेक्स्ट निष्कर्षण कॉन्फ़िगर नहीं है। कृपया Google क्लाउड क्रेडेंशियल सेट करें।",
		"error_analysis_failed":   "AI विश्लेषण असफल",
		"error_save_failed":       "डेटाबेस में सहेजा नहीं जा सका",
		"error_tts_unavailable":   "टेक्स्ट-टू-स्पीच API कॉन्फ़िगर नहीं है। कृपया Google क्लाउड क्रेडेंशियल सेट करें।",
		"error_tts_failed":        "वाक् संश्लेषण विफल",
		"error_unauthorized":      "प्रमाणीकरण आवश्यक है",
		"error_unexpected":        "एक अनपेक्षित त्रुटि हुई",
	},
}

// T returns the translation of key in lang, falling back to English and
// finally to the key itself.
func T(lang, key string) string {
	if table, ok := translations[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := translations[Default][key]; ok {
		return s
	}
	return key
}

// Strings returns the full translation table for lang with English filling
// any gaps, for injection into template renders.
func Strings(lang string) map[string]string {
	merged := make(map[string]string, len(translations[Default]))
	for k, v := range translations[Default] {
		merged[k] = v
	}
	if lang != Default {
		for k, v := range translations[lang] {
			merged[k] = v
		}
	}
	return merged
}
