package category

var defaultTable = mustTable([]Category{
	{"politics", []string{
		"politics", "political", "government", "election", "president", "congress", "senate",
		"democracy", "policy", "voting", "campaign", "candidate", "parliament", "minister",
		"trump", "biden", "republican", "democrat", "liberal", "conservative", "federal",
		"state", "local", "mayor", "governor", "senator", "representative", "cabinet",
	}},
	{"technology", []string{
		"technology", "tech", "ai", "artificial intelligence", "software", "startup",
		"innovation", "digital", "computer", "internet", "app", "mobile", "smartphone",
		"machine learning", "ml", "neural network", "deep learning", "chatgpt", "openai",
		"gpt", "llm", "blockchain", "crypto", "cryptocurrency", "bitcoin", "ethereum",
		"apple", "google", "microsoft", "amazon", "meta", "facebook", "twitter", "x",
		"tesla", "spacex", "nvidia", "intel", "amd", "qualcomm", "samsung", "huawei",
	}},
	{"business", []string{
		"business", "economy", "market", "finance", "stock", "trading", "investment",
		"corporate", "company", "earnings", "revenue", "profit", "loss", "merger",
		"acquisition", "ipo", "venture capital", "funding", "startup", "unicorn",
		"wall street", "nasdaq", "dow jones", "s&p", "ftse", "nikkei", "dax",
		"ceo", "cfo", "cto", "board", "shareholder", "dividend", "bankruptcy",
	}},
	{"sports", []string{
		"sports", "sport", "football", "basketball", "baseball", "soccer", "olympics",
		"athletics", "tennis", "golf", "hockey", "cricket", "rugby", "boxing", "mma",
		"nfl", "nba", "mlb", "nhl", "mls", "premier league", "champions league",
		"world cup", "super bowl", "stanley cup", "nba finals", "world series",
		"athlete", "player", "team", "coach", "championship", "tournament", "match",
	}},
	{"health", []string{
		"health", "healthcare", "medical", "medicine", "covid", "pandemic", "disease",
		"virus", "bacteria", "infection", "vaccine", "vaccination", "treatment",
		"therapy", "surgery", "hospital", "doctor", "nurse", "patient", "diagnosis",
		"symptoms", "cure", "prevention", "mental health", "depression", "anxiety",
		"cancer", "diabetes", "heart", "stroke", "alzheimer", "dementia", "autism",
	}},
	{"science", []string{
		"science", "scientific", "research", "study", "discovery", "space", "climate",
		"physics", "chemistry", "biology", "mathematics", "engineering", "medicine",
		"nasa", "spacex", "astronomy", "mars", "moon", "satellite", "rocket", "mission",
		"climate change", "global warming", "environment", "carbon", "emissions",
		"renewable", "solar", "wind", "nuclear", "fossil fuel", "green energy",
		"evolution", "genetics", "dna", "genome", "quantum", "particle", "atom",
	}},
	{"world", []string{
		"world", "international", "global", "foreign", "diplomacy", "diplomatic",
		"united nations", "un", "nato", "eu", "european union", "brexit", "trade",
		"war", "conflict", "peace", "treaty", "agreement", "summit", "conference",
		"embassy", "ambassador", "minister", "secretary", "president", "prime minister",
		"china", "russia", "india", "japan", "germany", "france", "uk", "canada",
		"australia", "brazil", "mexico", "africa", "asia", "europe", "americas",
	}},
})

// DefaultTable returns the built-in news categories: politics, technology,
// business, sports, health, science and world. The table is shared and
// never modified.
func DefaultTable() *Table {
	return defaultTable
}

func mustTable(categories []Category) *Table {
	t, err := NewTable(categories)
	if err != nil {
		panic(err)
	}
	return t
}
