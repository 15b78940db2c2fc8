package analysis

import "fmt"

// Prompt templates per language. Each demands strict JSON with the fields
// the viewer page renders.
var promptTemplates = map[string]string{
	"en": `Analyze this legal document and provide a JSON response with:
1. "title": Brief document title
2. "summary": Plain English summary
3. "annotations": Array of important clauses with "text_to_highlight" and "explanation"

Document: %s

Return only valid JSON:`,
	"hi": `इस कानूनी दस्तावेज़ का विश्लेषण करें और JSON प्रतिक्रिया प्रदान करें:
1. "title": संक्षिप्त दस्तावेज़ शीर्षक
2. "summary": सरल हिंदी सारांश
3. "annotations": "text_to_highlight" और "explanation" के साथ महत्वपूर्ण खंडों की सरणी

दस्तावेज़: %s

केवल वैध JSON वापस करें:`,
}

func buildPrompt(lang, text string) string {
	tmpl, ok := promptTemplates[lang]
	if !ok {
		tmpl = promptTemplates["en"]
	}
	return fmt.Sprintf(tmpl, text)
}
