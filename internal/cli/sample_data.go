package cli

import "cybershield-service/internal/domain"

func sampleArticles() []domain.Article {
	return []domain.Article{
		{
			Title:      "Spotting Phishing Emails Before They Hook You",
			Slug:       "spotting-phishing-emails",
			Category:   "phishing",
			Excerpt:    "The telltale signs of a phishing attempt and what to do when one lands in your inbox.",
			Content:    "Phishing remains the most common entry point for attackers. Check the sender address, hover over links before clicking, and be suspicious of urgency. Legitimate organizations never ask for credentials over email. When in doubt, contact the sender through a channel you already trust.",
			ReadTime:   5,
			Difficulty: domain.DifficultyBeginner,
		},
		{
			Title:      "Building Strong Passwords and Why Length Beats Complexity",
			Slug:       "building-strong-passwords",
			Category:   "passwords",
			Excerpt:    "Why a long passphrase beats a short jumble of symbols, and where a password manager fits in.",
			Content:    "A twelve-character passphrase of random words resists brute force far better than an eight-character string of symbols. Reuse is the bigger danger: one breached site exposes every account sharing that password. A password manager removes the need to remember any of them, and two-factor authentication limits the damage when a password does leak.",
			ReadTime:   7,
			Difficulty: domain.DifficultyBeginner,
		},
		{
			Title:      "Social Engineering: The Human Side of Security",
			Slug:       "social-engineering-human-side",
			Category:   "social-engineering",
			Excerpt:    "Pretexting, baiting and tailgating target people rather than systems.",
			Content:    "Attackers exploit helpfulness and authority. A caller claiming to be from IT, a USB stick left in the car park, a stranger following you through a badge-controlled door. Verify identities out of band, report unusual requests, and remember that policy exists precisely for the moments when breaking it feels polite.",
			ReadTime:   8,
			Difficulty: domain.DifficultyIntermediate,
		},
	}
}

func sampleQuizzes() []domain.Quiz {
	return []domain.Quiz{
		{
			Title:      "Phishing Fundamentals",
			Category:   "phishing",
			Difficulty: domain.DifficultyBeginner,
			Questions: []domain.Question{
				{
					Question:      "An email asks you to verify your bank password via a link. What should you do?",
					Options:       []string{"Click the link and log in", "Delete it and visit the bank's site directly", "Reply asking if it is genuine", "Forward it to a colleague"},
					CorrectAnswer: 1,
					Explanation:   "Never follow credential links from email; navigate to the site yourself.",
				},
				{
					Question:      "Which sender address is most suspicious?",
					Options:       []string{"support@yourbank.com", "support@yourbank.secure-login.net", "newsletter@yourbank.com", "noreply@yourbank.com"},
					CorrectAnswer: 1,
					Explanation:   "The real domain is secure-login.net, not yourbank.com.",
				},
				{
					Question:      "What does hovering over a link reveal?",
					Options:       []string{"The sender's name", "The actual destination URL", "Whether the email is encrypted", "The attachment size"},
					CorrectAnswer: 1,
					Explanation:   "The status bar shows where the link really points.",
				},
			},
		},
		{
			Title:      "Password Hygiene",
			Category:   "passwords",
			Difficulty: domain.DifficultyIntermediate,
			Questions: []domain.Question{
				{
					Question:      "Which password is hardest to brute-force?",
					Options:       []string{"P@ssw0rd!", "correct-horse-battery-staple", "12345678", "qwerty123"},
					CorrectAnswer: 1,
					Explanation:   "Length dominates: a long passphrase has far more entropy.",
				},
				{
					Question:      "Why is password reuse dangerous?",
					Options:       []string{"It slows down logins", "A single breach exposes every reused account", "Password managers forbid it", "It violates GDPR"},
					CorrectAnswer: 1,
					Explanation:   "Credential stuffing replays leaked passwords across sites.",
				},
				{
					Question:      "What does two-factor authentication add?",
					Options:       []string{"A second password", "Proof of something you have, not just something you know", "Encrypted email", "Antivirus protection"},
					CorrectAnswer: 1,
					Explanation:   "A stolen password alone is no longer enough to log in.",
				},
			},
		},
		{
			Title:      "Incident Response Essentials",
			Category:   "incident-response",
			Difficulty: domain.DifficultyAdvanced,
			Questions: []domain.Question{
				{
					Question:      "You suspect your laptop is compromised. What comes first?",
					Options:       []string{"Delete suspicious files", "Disconnect from the network and report it", "Reboot and hope", "Run every scanner you can find"},
					CorrectAnswer: 1,
					Explanation:   "Containment and reporting preserve evidence and stop spread.",
				},
				{
					Question:      "Why preserve logs after an incident?",
					Options:       []string{"To free disk space later", "To reconstruct the attack timeline", "Logs are legally worthless", "To retrain the antivirus"},
					CorrectAnswer: 1,
					Explanation:   "Logs are the primary forensic record of what happened.",
				},
				{
					Question:      "Ransomware has encrypted a file share. Paying the ransom guarantees recovery?",
					Options:       []string{"Yes, always", "No, and it funds further attacks", "Only for small amounts", "Yes, if paid in bitcoin"},
					CorrectAnswer: 1,
					Explanation:   "Recovery is never guaranteed; restore from backups instead.",
				},
			},
		},
	}
}

func sampleBadges() []domain.Badge {
	return []domain.Badge{
		{
			Name:        "First Steps",
			Description: "Completed your first quiz",
			Icon:        "footprints",
			Requirement: "complete_first_quiz",
		},
		{
			Name:        "Quiz Master",
			Description: "Completed ten quizzes",
			Icon:        "trophy",
			Requirement: "complete_ten_quizzes",
		},
		{
			Name:        "Perfect Score",
			Description: "Scored 100% on a quiz",
			Icon:        "star",
			Requirement: "perfect_score",
		},
		{
			Name:        "Vigilant Reporter",
			Description: "Filed your first incident report",
			Icon:        "shield",
			Requirement: "first_incident_report",
		},
	}
}
