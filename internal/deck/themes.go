package deck

import "strings"

// themes is the deck-building theme vocabulary matched against deck-name
// tokens, compiled from EDHREC theme/typal listings and metagame staples.
var themes = []string{
	"Affinity", "Aggression", "Allies", "Angels", "Apes", "Apostles",
	"Approach", "Arcane", "Archers", "Aristocrats", "Artifact", "Artifacts",
	"Artificers", "Assassins", "Atogs", "Auras", "Avatars", "Backup",
	"Barbarians", "Bears", "Beasts", "Berserkers", "Big-Mana", "Birds",
	"Blink", "Blitz", "Blood", "Bogles", "Bounce", "Bully", "Burn",
	"Cantrips", "Card-Draw", "Cascade", "Casualty", "Cats", "Cephalids",
	"Chaos", "Cheerios", "Clerics", "Clones", "Clues", "Connive",
	"Constructs", "Convoke", "Counters", "Counterspells", "Coven", "Crabs",
	"Curses", "Cycling", "Deathtouch", "Defenders", "Deflection", "Demons",
	"Deserts", "Detectives", "Devils", "Devotion", "Dinosaurs", "Discard",
	"Doctors", "Dogs", "Domain", "Dragons", "Drakes", "Draw-Go", "Dredge",
	"Druids", "Dungeons", "Dwarves", "Eggs", "Elders", "Eldrazi",
	"Elementals", "Elephants", "Elves", "Enchantments", "Enchantress",
	"Energy", "Enrage", "Equipment", "Equipments", "Evasion", "Exile",
	"Explore", "Extra-Combat", "Extra-Combats", "Extra-Turns", "Face-Down",
	"Faeries", "Fight", "Flash", "Flashback", "Flicker", "Fliers", "Flying",
	"Food", "Forced-Combat", "Foretell", "Foxes", "Frogs", "Fungi", "Giants",
	"Go-Wide", "Goad", "Goblins", "Gods", "Golems", "Gorgons", "Graveyard",
	"Griffins", "Halflings", "Hate-Bears", "Hatebears", "Heroic", "Historic",
	"Horrors", "Horses", "Hug", "Humans", "Hydras", "Illusions", "Incubate",
	"Indestructible", "Infect", "Insects", "Instants", "Jegantha", "Judo",
	"Kaheera", "Kavu", "Keruga", "Keywords", "Kithkin", "Knights", "Krakens",
	"Land", "Land-Destruction", "Landfall", "Lands", "Legends", "Life-Drain",
	"Life-Gain", "Life-Loss", "Lifedrain", "Lifegain", "Lifeloss", "Lords",
	"Madness", "Mana-Rock", "Merfolk", "Mill", "Minotaurs", "Miracle",
	"Modify", "Monarch", "Monks", "Moonfolk", "Morph", "Mutants", "Mutate",
	"Myr", "Necrons", "Ninjas", "Ninjutsu", "One-Shot", "Oozes", "Orcs",
	"Outlaws", "Overrun", "Party", "Permission", "Petitioners", "Phoenixes",
	"Phyrexians", "Pillow-Fort", "Pingers", "Pirates", "Planeswalkers",
	"Plants", "Pod", "Poison", "Politics", "Polymorph", "Ponza", "Populate",
	"Power", "Praetors", "Prison", "Prowess", "Rat-Colony", "Rats",
	"Reanimator", "Rebels", "Removal", "Rituals", "Robots", "Rock", "Rogues",
	"Sacrifice", "Sagas", "Samurai", "Saprolings", "Satyrs", "Scam",
	"Scarecrows", "Scry", "Sea-Creatures", "Self-Mill", "Shamans",
	"Shapeshifters", "Skeletons", "Slivers", "Slug", "Snakes",
	"Sneak-and-Tell", "Snow", "Soldiers", "Sorceries", "Specters",
	"Spell-Copy", "Spellslinger", "Sphinxes", "Spiders", "Spirits", "Stax",
	"Stompy", "Storm", "Suicide", "Sunforger", "Superfriends", "Surge",
	"Surveil", "Suspend", "Swarm", "Taxes", "The-Rock", "Theft", "Thopters",
	"Tokens", "Toolbox", "Top-Deck", "Topdeck", "Toughness", "Treasure",
	"Treasures", "Treefolk", "Tribal", "Tron", "Turtles", "Tutor", "Tutors",
	"Typal", "Tyranids", "Umori", "Unicorns", "Unnatural", "Value",
	"Vampires", "Vehicles", "Venture", "Voltron", "Voting", "Walls",
	"Warriors", "Weenie", "Weird", "Werewolves", "Wheels", "Wizards",
	"Wolves", "Wraiths", "Wurms", "X", "X-Creatures", "X-Spells", "Zombies",
	"Zoo",
}

var themesByToken = func() map[string]string {
	m := make(map[string]string, len(themes))
	for _, th := range themes {
		m[strings.ToLower(th)] = th
	}
	return m
}()

// themeForToken returns the canonical theme matching a deck-name token, if
// any.
func themeForToken(token string) (string, bool) {
	th, ok := themesByToken[strings.ToLower(token)]
	return th, ok
}
