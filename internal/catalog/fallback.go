package catalog

// Fallback returns the built-in minimal bank used when the catalog file is
// missing or unreadable. It keeps the service usable, not exam-ready.
func Fallback() *Catalog {
	return New(
		Metadata{Title: "AIGP Starter Bank", Version: "builtin"},
		fallbackQuestions(),
		fallbackSettings(),
	)
}

func fallbackSettings() ExamSettings {
	return ExamSettings{
		StandardExam: ExamDefaults{
			TotalQuestions:   100,
			TimeLimitMinutes: 150,
			PassingScore:     70,
		},
		PracticeModes: map[string]PracticeDefaults{
			"quick_practice": {TimeLimitMinutes: 15},
			"domain_focus":   {TimeLimitMinutes: 20},
		},
	}
}

func fallbackQuestions() []Question {
	return []Question{
		{
			ID: 1,
			Domain: "EU AI Act Fundamentals",
			Difficulty: "Easy",
			Prompt: "Which article of the EU AI Act defines prohibited AI practices?",
			Options: []string{"Article 3", "Article 5", "Article 9", "Article 52"},
			CorrectIndex: 1,
			Explanation: "Article 5 explicitly lists the prohibited AI practices including subliminal techniques and exploitation of vulnerabilities.",
			LegalReference: "EU AI Act, Article 5",
		},
		{
			ID: 2,
			Domain: "High-Risk AI Systems",
			Difficulty: "Medium",
			Prompt: "What is required before placing a high-risk AI system on the market?",
			Options: []string{"User training", "Conformity assessment", "Insurance policy", "Government approval"},
			CorrectIndex: 1,
			Explanation: "Article 16 requires providers to ensure conformity assessment procedures are completed before market placement.",
			LegalReference: "EU AI Act, Article 16",
		},
		{
			ID: 3,
			Domain: "Risk Management",
			Difficulty: "Medium",
			Prompt: "Risk management for high-risk AI systems must be:",
			Options: []string{"One-time assessment", "Annual review", "Continuous iterative process", "Market-based evaluation"},
			CorrectIndex: 2,
			Explanation: "Article 9 emphasizes risk management as a continuous, iterative process throughout the system lifecycle.",
			LegalReference: "EU AI Act, Article 9",
		},
		{
			ID: 4,
			Domain: "Data Governance",
			Difficulty: "Hard",
			Prompt: "Training datasets for high-risk AI systems must be:",
			Options: []string{"As large as possible", "Representative and error-free", "Publicly available", "Pre-approved by authorities"},
			CorrectIndex: 1,
			Explanation: "Article 10 requires training datasets to be representative, error-free, and complete with appropriate statistical properties.",
			LegalReference: "EU AI Act, Article 10",
		},
		{
			ID: 5,
			Domain: "Transparency Requirements",
			Difficulty: "Easy",
			Prompt: "AI systems that interact with humans must:",
			Options: []string{"Be fully automated", "Disclose they are AI systems", "Require human approval", "Use biometric identification"},
			CorrectIndex: 1,
			Explanation: "Article 52 mandates clear disclosure when humans interact with AI systems, ensuring transparency.",
			LegalReference: "EU AI Act, Article 52",
		},
	}
}
