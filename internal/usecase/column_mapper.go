package usecase

import "strings"

// Mapeamento inteligente de colunas do CSV importado: cada campo do
// Lead tem uma lista de apelidos comuns vistos em planilhas reais.
var columnMappings = map[string][]string{
	"business_name": {
		"business name", "company", "company name", "business", "organization",
		"org", "organization name", "firm", "firm name", "client", "client name",
	},
	"decision_maker_name": {
		"decision maker name", "decision maker", "contact", "contact name",
		"name", "full name", "person", "lead name", "owner", "owner name",
		"first name", "last name", "contact person",
	},
	"email": {
		"email", "email address", "e-mail", "mail", "contact email",
		"email id", "emailaddress",
	},
	"website": {
		"website", "web", "url", "site", "web site", "homepage",
		"web address", "domain", "link",
	},
	"industry": {
		"industry", "sector", "vertical", "category", "business type",
		"type", "field", "niche",
	},
}

type MappingSuggestion struct {
	MapsTo     string  `json:"maps_to"`
	Confidence string  `json:"confidence"`
	Score      float64 `json:"score"`
}

type HeaderAnalysis struct {
	Mappings map[string]MappingSuggestion `json:"mappings"`
	Unmapped []string                     `json:"unmapped"`
}

func normalizeColumnName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "_", " ")
	return strings.ReplaceAll(s, "-", " ")
}

// similarity: match exato vale 1.0, substring 0.8, sobreposição de
// palavras proporcional até 0.6.
func similarity(a, b string) float64 {
	s1 := normalizeColumnName(a)
	s2 := normalizeColumnName(b)

	if s1 == s2 {
		return 1.0
	}

	if strings.Contains(s1, s2) || strings.Contains(s2, s1) {
		return 0.8
	}

	words1 := strings.Fields(s1)
	words2 := strings.Fields(s2)
	common := 0
	for _, w1 := range words1 {
		for _, w2 := range words2 {
			if w1 == w2 {
				common++
				break
			}
		}
	}
	if common > 0 {
		longest := len(words1)
		if len(words2) > longest {
			longest = len(words2)
		}
		return 0.6 * float64(common) / float64(longest)
	}

	return 0
}

// DetectColumnMapping acha o melhor campo destino para uma coluna.
// Score abaixo de 0.5 é ruído, volta sem sugestão.
func DetectColumnMapping(csvColumn string) MappingSuggestion {
	var bestMatch string
	bestScore := 0.0

	for targetField, variations := range columnMappings {
		for _, variation := range variations {
			if score := similarity(csvColumn, variation); score > bestScore {
				bestScore = score
				bestMatch = targetField
			}
		}
	}

	confidence := "low"
	switch {
	case bestScore >= 0.9:
		confidence = "high"
	case bestScore >= 0.7:
		confidence = "medium"
	case bestScore >= 0.5:
		confidence = "low"
	default:
		bestMatch = ""
	}

	return MappingSuggestion{MapsTo: bestMatch, Confidence: confidence, Score: bestScore}
}

// AnalyzeCSVHeaders sugere mapeamentos para o preview do upload.
func AnalyzeCSVHeaders(headers []string) HeaderAnalysis {
	analysis := HeaderAnalysis{
		Mappings: make(map[string]MappingSuggestion),
		Unmapped: []string{},
	}

	for _, header := range headers {
		suggestion := DetectColumnMapping(header)
		if suggestion.MapsTo != "" {
			analysis.Mappings[header] = suggestion
		} else {
			analysis.Unmapped = append(analysis.Unmapped, header)
		}
	}

	return analysis
}

// ApplyMappings converte uma linha crua do CSV nos campos do Lead
// usando o de-para escolhido (coluna do CSV -> campo destino).
func ApplyMappings(row map[string]string, columnMap map[string]string) map[string]string {
	mapped := make(map[string]string)
	for csvColumn, targetField := range columnMap {
		if value := row[csvColumn]; value != "" {
			mapped[targetField] = value
		}
	}
	return mapped
}
