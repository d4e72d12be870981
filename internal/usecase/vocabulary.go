package usecase

import "github.com/foodlens/backend/internal/domain"

// ListVocabulary returns every condition, issue and goal with the display
// name and icon of its rule set.
func ListVocabulary() domain.Vocabulary {
	v := domain.Vocabulary{
		ChronicConditions: make([]domain.VocabularyEntry, 0, len(domain.ChronicConditions)),
		TemporaryIssues:   make([]domain.VocabularyEntry, 0, len(domain.TemporaryIssues)),
		HealthGoals:       make([]domain.VocabularyEntry, 0, len(domain.HealthGoals)),
	}
	for _, id := range domain.ChronicConditions {
		v.ChronicConditions = append(v.ChronicConditions, vocabularyEntry(string(id), chronicRules[id]))
	}
	for _, id := range domain.TemporaryIssues {
		v.TemporaryIssues = append(v.TemporaryIssues, vocabularyEntry(string(id), temporaryRules[id]))
	}
	for _, id := range domain.HealthGoals {
		v.HealthGoals = append(v.HealthGoals, vocabularyEntry(string(id), goalRules[id]))
	}
	return v
}

func vocabularyEntry(id string, rule domain.ConditionRule) domain.VocabularyEntry {
	return domain.VocabularyEntry{ID: id, Name: rule.Name, Icon: rule.Icon}
}
