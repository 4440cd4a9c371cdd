package core

import (
	"fmt"
	"strings"

	"triagesense/pkg"
)

// Keyword tables for the heuristic urgency classifier. Order matters:
// lists are scanned front to back and the first match wins.
var emergencyKeywords = []string{
	"chest pain", "not breathing", "severe shortness", "shortness of breath",
	"difficulty breathing", "unconscious", "faint", "fainting", "severe bleeding",
	"stroke", "face droop", "slurred speech", "sudden weakness", "seizure", "anaphylaxis",
}

var urgentKeywords = []string{
	"high fever", "fever 39", "fever 38.5", "persistent vomiting", "severe pain",
	"worsening", "progressive", "rapidly", "heavy", "dehydration", "very weak",
	"cannot hold down", "difficulty speaking", "confusion",
}

var mildIndicators = []string{
	"runny nose", "mild sore", "mild cough", "sore throat", "sneezing", "congestion", "nasal",
	"itchy eyes", "minor headache", "slight cough", "low-grade fever", "1 day", "2 days",
}

// Classify maps raw symptom text to an urgency tier and a human-readable
// justification. Pure and deterministic: case-insensitive substring matching
// against the keyword tables in strict priority order, no scoring. Empty
// input falls through to Non-urgent.
func Classify(symptoms string) (pkg.TriageLevel, string) {
	text := strings.ToLower(symptoms)
	for _, k := range emergencyKeywords {
		if strings.Contains(text, k) {
			return pkg.LevelEmergency, fmt.Sprintf("Contains emergency sign/keyword: '%s'. Immediate evaluation recommended.", k)
		}
	}
	for _, k := range urgentKeywords {
		if strings.Contains(text, k) {
			return pkg.LevelUrgent, fmt.Sprintf("Contains concerning feature: '%s', consider urgent assessment.", k)
		}
	}
	mildCount := 0
	for _, k := range mildIndicators {
		if strings.Contains(text, k) {
			mildCount++
		}
	}
	if mildCount >= 1 &&
		!strings.Contains(text, "severe") &&
		!strings.Contains(text, "worsen") &&
		!strings.Contains(text, "persistent") {
		return pkg.LevelSelfCare, "Symptoms appear mild; self-care and watchful waiting may be appropriate."
	}
	return pkg.LevelNonUrgent, "No immediate warning signs detected; consider primary care or self-care as appropriate."
}
