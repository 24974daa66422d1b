package model

// WordBank holds the ordered word lists of one style. Word banks are reference
// data and must not be mutated after construction.
type WordBank struct {
	Prefixes []string
	Words    []string
	Suffixes []string
}

// WordBanks maps every style to its word lists.
type WordBanks map[Style]WordBank

// Lookup returns the word bank for style, falling back to DefaultStyle when the
// style has no entry.
func (b WordBanks) Lookup(style Style) WordBank {
	if bank, ok := b[style]; ok {
		return bank
	}
	return b[DefaultStyle]
}

// DefaultWordBanks returns the built-in word lists for all styles.
func DefaultWordBanks() WordBanks {
	return WordBanks{
		StyleProfessional: {
			Prefixes: []string{"admin", "manager", "director", "lead", "senior", "chief", "head"},
			Words:    []string{"tech", "pro", "expert", "ace", "master", "elite", "prime", "core", "max"},
			Suffixes: []string{"2025", "pro", "tech", "admin", "lead", "expert", "ace"},
		},
		StyleGamer: {
			Prefixes: []string{"Shadow", "Dark", "Fire", "Ice", "Storm", "Night", "Blood", "Death", "Cyber"},
			Words:    []string{"Hunter", "Killer", "Master", "Lord", "King", "Slayer", "Warrior", "Ninja", "Phantom"},
			Suffixes: []string{"X", "XX", "XXX", "2025", "99", "77", "88", "Pro", "Elite"},
		},
		StyleCreative: {
			Prefixes: []string{"Artisan", "Creator", "Dreamer", "Visionary", "Mystic", "Cosmic", "Luna", "Stellar"},
			Words:    []string{"Paint", "Canvas", "Brush", "Color", "Design", "Art", "Create", "Dream", "Vision"},
			Suffixes: []string{"Studio", "Art", "Create", "Design", "Vision", "Dream", "Color"},
		},
		StyleTech: {
			Prefixes: []string{"Code", "Dev", "Tech", "Cyber", "Digital", "Quantum", "Neural", "Binary"},
			Words:    []string{"Ninja", "Wizard", "Master", "Guru", "Expert", "Hacker", "Coder", "Developer"},
			Suffixes: []string{"Dev", "Code", "Tech", "2025", "Pro", "X", "Labs", "Hub"},
		},
		StyleFantasy: {
			Prefixes: []string{"Dragon", "Phoenix", "Unicorn", "Griffin", "Fairy", "Elf", "Dwarf", "Mage"},
			Words:    []string{"Fire", "Magic", "Crystal", "Moon", "Star", "Light", "Shadow", "Wind"},
			Suffixes: []string{"Born", "Heart", "Soul", "Wing", "Fire", "Light", "Magic", "Crystal"},
		},
		StyleCool: {
			Prefixes: []string{"Cool", "Ice", "Frost", "Snow", "Chill", "Frozen", "Arctic", "Winter"},
			Words:    []string{"Vibe", "Wave", "Flow", "Style", "Mode", "Zone", "Feel", "Beat"},
			Suffixes: []string{"Vibes", "Wave", "Flow", "Style", "Zone", "Cool", "Ice", "Chill"},
		},
		StyleCute: {
			Prefixes: []string{"Sweet", "Cute", "Lovely", "Pretty", "Sunny", "Happy", "Jolly", "Merry"},
			Words:    []string{"Panda", "Kitten", "Puppy", "Bunny", "Bear", "Fox", "Owl", "Deer"},
			Suffixes: []string{"Love", "Heart", "Sweet", "Cute", "Joy", "Happy", "Smile", "Hug"},
		},
		StyleRandom: {
			Prefixes: []string{"Alpha", "Beta", "Gamma", "Delta", "Omega", "Prime", "Ultra", "Super"},
			Words:    []string{"Force", "Power", "Energy", "Boost", "Charge", "Spark", "Flash", "Bolt"},
			Suffixes: []string{"X", "Pro", "Max", "Plus", "Ultra", "Super", "2025", "Elite"},
		},
	}
}
