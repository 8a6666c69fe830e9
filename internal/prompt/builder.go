// Package prompt renders the instruction document sent to the text
// generation service for a single devotional unit.
package prompt

import (
	"fmt"
	"strings"

	"manna/internal/catalog"
	"manna/internal/exclusion"
)

// maxAdvisoryExclusions caps how many already-used citations are listed in
// the prompt. The list is advisory only; selection happens before the call.
const maxAdvisoryExclusions = 40

// prayerClosings holds the required closing phrase of the prayer per
// language.
var prayerClosings = map[string]string{
	"es": "en el nombre de Jesús, amén",
	"en": "in the name of Jesus, amen",
	"pt": "em nome de Jesus, amém",
	"fr": "au nom de Jésus, amen",
	"zh": "奉耶稣的名祷告，阿们",
	"ja": "イエス様の御名によって祈ります、アーメン",
}

// Builder carries the per-unit parameters of one generation request.
type Builder struct {
	Language string
	Version  string
	Date     string
	Topic    string
	Excluded *exclusion.Set
}

// Build renders the full instruction document for the given citation.
// Pure string construction; the citation is abbreviated inline to save
// tokens while the exact-format clause keeps the full reference in play.
func (b Builder) Build(citation catalog.Citation) string {
	full := citation.String()
	abbreviated := catalog.Abbreviate(citation)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Eres un generador de devocionales bíblicos experto y devoto. Para la fecha %s, en %s-%s, genera un devocional basado en el versículo clave: %q.\n",
		b.Date, strings.ToUpper(b.Language), b.Version, abbreviated)
	sb.WriteString("La respuesta debe ser un único objeto JSON con las siguientes claves:\n")
	sb.WriteString("- `id`: Un identificador único (ej. juan316RVR1960).\n")
	sb.WriteString("- `date`: La fecha del devocional en formato 'YYYY-MM-DD'.\n")
	sb.WriteString("- `language`: El idioma (ej. 'es', 'en', 'pt', 'fr', 'zh', 'ja').\n")
	sb.WriteString("- `version`: La versión de la Biblia (ej. 'RVR1960', 'KJV', 'ARC', 'LS1910').\n")
	sb.WriteString("\n=== FORMATO CRÍTICO PARA EL CAMPO 'versiculo' ===\n")
	sb.WriteString("El campo 'versiculo' debe seguir EXACTAMENTE este formato sin excepciones:\n")
	fmt.Fprintf(&sb, "\"%s %s: \\\"<texto completo del versículo>\\\"\"\n", full, b.Version)
	sb.WriteString("Si el versículo es un rango (ej: 2:8-9) debes incluir el texto de todos los versículos del rango, no solo el último número.\n")
	sb.WriteString("\n=== CONTINUACIÓN DE LOS CAMPOS ===\n")
	sb.WriteString("- `reflexion`: Una reflexión profunda y contextualizada sobre el versículo (300 palabras).\n")
	fmt.Fprintf(&sb, "- `para_meditar`: Una lista de 2 a 3 objetos JSON, cada uno un versículo de la versión %s para meditar, con claves: cita (la referencia, ej. 'Filipenses 4:6') y texto (el texto del versículo).\n", b.Version)
	closing := prayerClosings[b.Language]
	if closing == "" {
		closing = prayerClosings["es"]
	}
	fmt.Fprintf(&sb, "- `oracion`: Una oración relacionada con el tema del devocional (150 palabras, solo en el idioma '%s'). DEBE finalizar con la frase %q.\n", b.Language, closing)
	sb.WriteString("- `tags`: Una lista de exactamente 2 palabras clave individuales (ej. ['Fe', 'Esperanza']).\n")
	sb.WriteString("\n=== CONTROL DE CALIDAD ===\n")
	fmt.Fprintf(&sb, "Todo el texto debe estar únicamente en el idioma '%s'.\n", b.Language)
	sb.WriteString("1. NO repitas palabras o frases consecutivamente.\n")
	sb.WriteString("2. NO dupliques párrafos o secciones de texto.\n")
	fmt.Fprintf(&sb, "3. La oración DEBE terminar EXACTAMENTE con %q.\n", closing)
	fmt.Fprintf(&sb, "4. Todos los versículos de 'para_meditar' deben ser de la versión %s.\n", b.Version)

	if b.Topic != "" {
		fmt.Fprintf(&sb, "\nEl tema sugerido para el devocional es: %s.\n", b.Topic)
	}

	if citation.IsRange() {
		sb.WriteString("\nADVERTENCIA IMPORTANTE: Este versículo contiene un RANGO.\n")
		sb.WriteString("Debes incluir el texto COMPLETO de todos los versículos desde el inicio hasta el final del rango.\n")
		fmt.Fprintf(&sb, "El campo 'versiculo' DEBE comenzar con: \"%s %s:\"\n", full, b.Version)
		sb.WriteString("NO uses solo el último número del rango.\n")
	}

	if b.Excluded != nil && b.Excluded.Len() > 0 {
		sb.WriteString("\nNo cites como versículo principal ninguno de los siguientes, ya usados en devocionales anteriores:\n")
		for i, c := range b.Excluded.Citations() {
			if i >= maxAdvisoryExclusions {
				break
			}
			fmt.Fprintf(&sb, "- %s\n", c)
		}
	}

	return sb.String()
}
