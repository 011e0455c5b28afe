package analysis

import "nyaysetu-backend/models"

// SectionRule pairs case-insensitive keyword literals with a penal section.
// All matching rules fire; catalogue order determines output order.
type SectionRule struct {
	Keywords []string
	Section  models.LegalSection
}

// ArticleRule pairs keyword literals with a constitutional article
type ArticleRule struct {
	Keywords []string
	Article  models.ConstitutionalArticle
}

// The catalogues below are built once at init and shared read-only across
// all goroutines. Keywords include transliterated colloquial terms.

var offenceRules = []SectionRule{
	{
		Keywords: []string{"theft", "stolen", "robbed", "snatched", "pocket", "lost", "chor", "chori"},
		Section: models.LegalSection{
			Section:     "BNS 303(2)",
			IPCSection:  "IPC 379",
			Description: "Theft - Dishonest taking of movable property",
			Punishment:  "Up to 3 years imprisonment or fine or both",
			Bailable:    false,
			Cognizable:  true,
		},
	},
	{
		Keywords: []string{"robbery", "loot", "force", "weapon", "dacoity"},
		Section: models.LegalSection{
			Section:     "BNS 309",
			IPCSection:  "IPC 392",
			Description: "Robbery - Theft with force or fear of death/hurt",
			Punishment:  "Rigorous imprisonment up to 10 years and fine",
			Bailable:    false,
			Cognizable:  true,
		},
	},
	{
		Keywords: []string{"hit", "slap", "punch", "beat", "attack", "fight", "hurt", "maar", "peeta"},
		Section: models.LegalSection{
			Section:     "BNS 115(2)",
			IPCSection:  "IPC 323",
			Description: "Voluntarily causing hurt",
			Punishment:  "Up to 1 year imprisonment or fine",
			Bailable:    true,
			Cognizable:  false,
		},
	},
	{
		Keywords: []string{"knife", "sword", "weapon", "rod", "stab", "cut", "bleed", "shoot", "gun"},
		Section: models.LegalSection{
			Section:     "BNS 118(1)",
			IPCSection:  "IPC 324",
			Description: "Voluntarily causing hurt by dangerous weapons",
			Punishment:  "Up to 3 years imprisonment",
			Bailable:    true,
			Cognizable:  true,
		},
	},
	{
		Keywords: []string{"grievous", "fracture", "broke", "bone", "eye", "ear", "permanent"},
		Section: models.LegalSection{
			Section:     "BNS 117(2)",
			IPCSection:  "IPC 325",
			Description: "Voluntarily causing grievous hurt",
			Punishment:  "Up to 7 years imprisonment and fine",
			Bailable:    true,
			Cognizable:  true,
		},
	},
	{
		Keywords: []string{"cheat", "fraud", "scam", "money", "bank", "online", "upi", "otp"},
		Section: models.LegalSection{
			Section:     "BNS 318(4)",
			IPCSection:  "IPC 420",
			Description: "Cheating and dishonestly inducing delivery of property",
			Punishment:  "Up to 7 years imprisonment and fine",
			Bailable:    false,
			Cognizable:  true,
		},
	},
	{
		Keywords: []string{"kill", "murder", "dead", "death", "killed"},
		Section: models.LegalSection{
			Section:     "BNS 103(1)",
			IPCSection:  "IPC 302",
			Description: "Murder",
			Punishment:  "Death or life imprisonment",
			Bailable:    false,
			Cognizable:  true,
		},
	},
	{
		Keywords: []string{"attempt to murder", "tried to kill", "neck", "throat", "strangle"},
		Section: models.LegalSection{
			Section:     "BNS 109",
			IPCSection:  "IPC 307",
			Description: "Attempt to Murder",
			Punishment:  "Up to 10 years imprisonment (Life if hurt caused)",
			Bailable:    false,
			Cognizable:  true,
		},
	},
	{
		Keywords: []string{"rape", "sexual", "force", "assault", "woman", "girl", "minor"},
		Section: models.LegalSection{
			Section:     "BNS 64",
			IPCSection:  "IPC 376",
			Description: "Rape & Sexual Assault",
			Punishment:  "Rigorous imprisonment not less than 10 years",
			Bailable:    false,
			Cognizable:  true,
		},
	},
	{
		Keywords: []string{"kidnap", "missing", "child", "taken away", "abduct"},
		Section: models.LegalSection{
			Section:     "BNS 137(2)",
			IPCSection:  "IPC 363",
			Description: "Kidnapping",
			Punishment:  "Up to 7 years imprisonment and fine",
			Bailable:    true,
			Cognizable:  true,
		},
	},
	{
		Keywords: []string{"defamation", "reputation", "slander", "libel", "bad name", "insult"},
		Section: models.LegalSection{
			Section:     "BNS 356(2)",
			IPCSection:  "IPC 500",
			Description: "Defamation",
			Punishment:  "Up to 2 years imprisonment or fine",
			Bailable:    true,
			Cognizable:  false,
		},
	},
	{
		Keywords: []string{"threat", "intimidation", "kill you", "burn", "destroy"},
		Section: models.LegalSection{
			Section:     "BNS 351(2)",
			IPCSection:  "IPC 506",
			Description: "Criminal Intimidation",
			Punishment:  "Up to 2 years imprisonment",
			Bailable:    true,
			Cognizable:  false,
		},
	},
	{
		Keywords: []string{"suicide", "kill myself", "die", "end my life"},
		Section: models.LegalSection{
			Section:     "Mental Healthcare Act",
			IPCSection:  "Sec 115",
			Description: "Presumed Severe Stress - Immediate Assistance Required",
			Punishment:  "Protection & Care (Decriminalized)",
			Bailable:    true,
			Cognizable:  false,
		},
	},
}

var articleLegalAid = models.ConstitutionalArticle{
	ID:          "Article 39A",
	Title:       "Equal Justice and Free Legal Aid",
	Description: "The State shall provide free legal aid to ensure that opportunities for securing justice are not denied by reason of economic or other disabilities",
	Category:    models.CategoryDirectivePrinciple,
}

var articleRules = []ArticleRule{
	{
		Keywords: []string{"kill", "murder", "life threat", "custody", "encounter", "torture"},
		Article: models.ConstitutionalArticle{
			ID:          "Article 21",
			Title:       "Protection of Life and Personal Liberty",
			Description: "No person shall be deprived of his life or personal liberty except according to procedure established by law",
			Category:    models.CategoryFundamentalRight,
		},
	},
	{
		Keywords: []string{"arrest", "arrested", "detained", "detention", "lockup", "lock-up"},
		Article: models.ConstitutionalArticle{
			ID:          "Article 22",
			Title:       "Protection Against Arbitrary Arrest and Detention",
			Description: "An arrested person must be informed of the grounds of arrest, allowed to consult a legal practitioner, and produced before a magistrate within 24 hours",
			Category:    models.CategoryFundamentalRight,
		},
	},
	{
		Keywords: []string{"discrimination", "caste", "religion", "unequal", "bias"},
		Article: models.ConstitutionalArticle{
			ID:          "Article 14",
			Title:       "Equality Before Law",
			Description: "The State shall not deny to any person equality before the law or the equal protection of the laws",
			Category:    models.CategoryFundamentalRight,
		},
	},
	{
		Keywords: []string{"legal aid", "lawyer", "advocate", "cannot afford"},
		Article:  articleLegalAid,
	},
	{
		Keywords: []string{"riot", "mob", "public property", "vandalism"},
		Article: models.ConstitutionalArticle{
			ID:          "Article 51A",
			Title:       "Fundamental Duties",
			Description: "It shall be the duty of every citizen to safeguard public property and to abjure violence",
			Category:    models.CategoryDuty,
		},
	},
	{
		Keywords: []string{"fir refused", "police refused", "no action taken", "complaint ignored"},
		Article: models.ConstitutionalArticle{
			ID:          "Article 226",
			Title:       "Power of High Courts to Issue Writs",
			Description: "A High Court may issue directions, orders or writs for the enforcement of rights, including against refusal to register a complaint",
			Category:    models.CategoryJurisdictional,
		},
	},
}

// OffenceRules returns the offence catalogue in definition order
func OffenceRules() []SectionRule {
	return offenceRules
}

// ArticleRules returns the constitutional catalogue in definition order
func ArticleRules() []ArticleRule {
	return articleRules
}
