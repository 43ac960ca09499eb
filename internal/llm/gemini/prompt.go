package gemini

import (
	"fmt"
	"strings"

	"jumysal-backend/internal/profiles"
)

const systemInstructions = `Ты — генератор резюме для платформы стажировок JumysAl.
Верни ТОЛЬКО HTML-фрагмент резюме (без <html>, <head>, <body>, без markdown).
Используй вложенные <div> с inline-стилями, аккуратную типографику и разделы:
шапка (имя, должность, город, email), образование, навыки, опыт работы (если есть),
языки, интересы (если есть). Не выдумывай факты, используй только данные кандидата.`

// Worked example shown to the model. Known to leak into outputs from time to
// time, which is why the generated HTML is passed through the sanitizer.
const workedExample = `Пример оформления (данные вымышленные, замени их данными кандидата):
<div style="font-family: Arial, sans-serif; padding: 24px;">
  <div style="border-bottom: 2px solid #2563eb;">
    <h1>Иван Иванов</h1>
    <p>ivan.ivanov@example.com</p>
  </div>
  <div>
    <h2>Образование</h2>
    <p>Казахстанско-Британский технический университет</p>
    <p>Nazarbayev University</p>
  </div>
  <div>
    <h2>Навыки</h2>
    <p>Технические навыки: Python, SQL</p>
    <p>Гибкие навыки: коммуникация</p>
  </div>
</div>`

var styleDescriptors = map[string]string{
	"standard":     "нейтральный деловой стиль, сдержанные цвета",
	"professional": "строгий корпоративный стиль, тёмно-синяя палитра",
	"academic":     "академический стиль, акцент на образовании и публикациях",
	"modern":       "современный стиль, яркий акцентный цвет и крупная типографика",
}

// BuildPrompt assembles the generation prompt from a normalized snapshot and
// the requested visual style.
func BuildPrompt(snap profiles.Snapshot, style string) string {
	descriptor, ok := styleDescriptors[strings.ToLower(strings.TrimSpace(style))]
	if !ok {
		descriptor = styleDescriptors["modern"]
	}

	var b strings.Builder
	b.WriteString(systemInstructions)
	b.WriteString("\n\nСтиль оформления: ")
	b.WriteString(descriptor)
	b.WriteString("\n\n")
	b.WriteString(workedExample)
	b.WriteString("\n\nДанные кандидата:\n")
	writeField(&b, "Имя", snap.DisplayName)
	writeField(&b, "Email", snap.Email)
	writeField(&b, "Должность", snap.Position)
	writeField(&b, "Город", snap.Location)
	writeField(&b, "О себе", snap.Bio)
	writeField(&b, "Учебное заведение", snap.Institution)
	writeField(&b, "Год выпуска", snap.GraduationYear)
	writeField(&b, "LinkedIn", snap.LinkedInURL)
	writeList(&b, "Навыки", snap.Skills)
	writeList(&b, "Опыт работы", snap.Experience)
	writeList(&b, "Образование", snap.Education)
	writeList(&b, "Языки", snap.Languages)
	writeList(&b, "Интересы", snap.Interests)
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	fmt.Fprintf(b, "- %s: %s\n", label, value)
}

func writeList(b *strings.Builder, label string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(b, "- %s: %s\n", label, strings.Join(values, "; "))
}
