package interpretation

// Curated content for the most commonly looked-up mirror and reversed hours.
// Times absent from these tables fall through to the generic template.

var curatedEN = map[string]Interpretation{
	"11:11": {
		Spiritual: Spiritual{
			Title:       "Spiritual Awakening",
			Description: "11:11 is the most powerful mirror hour, a portal of alignment between your thoughts and the universe. Seeing it repeatedly signals a period of accelerated spiritual growth.",
			Guidance:    "Make a wish, but more importantly, notice what you were thinking about. Those thoughts are being amplified right now.",
		},
		Angel: Angel{
			Name:     "Lehahiah",
			Message:  "You are supported in your ambitions. Obedience to your higher calling brings luck and recognition.",
			Guidance: "Stay disciplined and loyal to your path. Doors are opening for those who serve something larger than themselves.",
		},
		Numerology: Numerology{
			Title:        "The Master Number Doubled",
			RootNumber:   "1+1+1+1 = 4, the number of foundations and stability.",
			MirrorEffect: "The doubled master number 11 amplifies intuition and spiritual insight to their highest potential.",
			Analysis:     "Four asks you to build. The visions sparked by the double 11 need grounding in daily practice to become real.",
		},
	},
	"22:22": {
		Spiritual: Spiritual{
			Title:       "The Master Builder's Hour",
			Description: "22:22 carries the energy of the master builder. Your long-term plans are under benevolent watch, and patience now yields lasting results.",
			Guidance:    "Keep faith in projects that mature slowly. What you construct in this period is meant to endure.",
		},
		Angel: Angel{
			Name:     "Habuhiah",
			Message:  "Healing and fertility of ideas are granted. What was stagnant begins to grow again.",
			Guidance: "Tend to what you have planted, in work and in relationships. Growth is already underway even where you cannot see it.",
		},
		Numerology: Numerology{
			Title:        "Quadruple Two",
			RootNumber:   "2+2+2+2 = 8, the number of material accomplishment.",
			MirrorEffect: "Four twos multiply the energy of partnership and diplomacy into tangible achievement.",
			Analysis:     "Eight rewards persistence. Cooperation, not force, unlocks the abundance this hour points toward.",
		},
	},
	"12:12": {
		Spiritual: Spiritual{
			Title:       "Crossroads of Growth",
			Description: "12:12 appears when life asks you to step out of an old cycle. It marks a crossroads where conscious choice shapes your next chapter.",
			Guidance:    "Choose deliberately. The habits you keep past this point will define the coming cycle.",
		},
		Angel: Angel{
			Name:     "Chavakiah",
			Message:  "Reconciliation and harmony are favored. Mend what is strained before moving forward.",
			Guidance: "Reach out first. Peace made now clears the road for everything you are building.",
		},
		Numerology: Numerology{
			Title:        "The Completed Cycle",
			RootNumber:   "1+2+1+2 = 6, the number of harmony and responsibility.",
			MirrorEffect: "The repeating 12 mirrors completion flowing into renewal, a cycle closing as another opens.",
			Analysis:     "Six calls you toward balance between duty and desire. Honor commitments, but not at the cost of your own renewal.",
		},
	},
	"21:21": {
		Spiritual: Spiritual{
			Title:       "Harvest of Intention",
			Description: "21:21 signals that a cycle of effort is bearing fruit. What you set in motion is returning to you, magnified.",
			Guidance:    "Receive with gratitude. Acknowledging what arrives opens space for more.",
		},
		Angel: Angel{
			Name:     "Damabiah",
			Message:  "Protection surrounds your ventures, especially those that help others.",
			Guidance: "Generosity now is an investment the universe repays in kind.",
		},
		Numerology: Numerology{
			Title:        "Mirrored Beginnings",
			RootNumber:   "2+1+2+1 = 6, the caretaker's number.",
			MirrorEffect: "The mirrored 21 doubles the energy of new beginnings built on partnership.",
			Analysis:     "Six under this pattern asks you to share your harvest. Success kept to yourself will not compound.",
		},
	},
}

var curatedFR = map[string]Interpretation{
	"11:11": {
		Spiritual: Spiritual{
			Title:       "Éveil Spirituel",
			Description: "11:11 est l'heure miroir la plus puissante, un portail d'alignement entre vos pensées et l'univers. La voir régulièrement annonce une période de croissance spirituelle accélérée.",
			Guidance:    "Faites un vœu, mais surtout, notez ce à quoi vous pensiez. Ces pensées sont amplifiées en ce moment même.",
		},
		Angel: Angel{
			Name:     "Lehahiah",
			Message:  "Vous êtes soutenu dans vos ambitions. L'obéissance à votre vocation supérieure apporte chance et reconnaissance.",
			Guidance: "Restez discipliné et fidèle à votre chemin. Des portes s'ouvrent pour ceux qui servent plus grand qu'eux-mêmes.",
		},
		Numerology: Numerology{
			Title:        "Le Maître Nombre Doublé",
			RootNumber:   "1+1+1+1 = 4, le nombre des fondations et de la stabilité.",
			MirrorEffect: "Le maître nombre 11 doublé amplifie l'intuition et la perception spirituelle à leur plus haut potentiel.",
			Analysis:     "Le quatre vous demande de construire. Les visions éveillées par le double 11 doivent s'ancrer dans une pratique quotidienne pour devenir réelles.",
		},
	},
	"22:22": {
		Spiritual: Spiritual{
			Title:       "L'Heure du Maître Bâtisseur",
			Description: "22:22 porte l'énergie du maître bâtisseur. Vos projets de long terme sont sous bienveillance, et la patience produit maintenant des résultats durables.",
			Guidance:    "Gardez foi dans les projets qui mûrissent lentement. Ce que vous construisez en cette période est destiné à durer.",
		},
		Angel: Angel{
			Name:     "Habuhiah",
			Message:  "La guérison et la fertilité des idées vous sont accordées. Ce qui stagnait recommence à croître.",
			Guidance: "Prenez soin de ce que vous avez planté, dans le travail comme dans les relations. La croissance est déjà en marche même là où vous ne la voyez pas.",
		},
		Numerology: Numerology{
			Title:        "Le Deux Quadruplé",
			RootNumber:   "2+2+2+2 = 8, le nombre de l'accomplissement matériel.",
			MirrorEffect: "Quatre deux multiplient l'énergie du partenariat et de la diplomatie en réussite tangible.",
			Analysis:     "Le huit récompense la persévérance. C'est la coopération, non la force, qui débloque l'abondance que cette heure annonce.",
		},
	},
	"12:12": {
		Spiritual: Spiritual{
			Title:       "Carrefour de Croissance",
			Description: "12:12 apparaît quand la vie vous demande de sortir d'un ancien cycle. Elle marque un carrefour où le choix conscient façonne votre prochain chapitre.",
			Guidance:    "Choisissez délibérément. Les habitudes que vous gardez au-delà de ce point définiront le cycle à venir.",
		},
		Angel: Angel{
			Name:     "Chavakiah",
			Message:  "La réconciliation et l'harmonie sont favorisées. Réparez ce qui est tendu avant d'avancer.",
			Guidance: "Tendez la main en premier. La paix faite maintenant dégage la route de tout ce que vous bâtissez.",
		},
		Numerology: Numerology{
			Title:        "Le Cycle Accompli",
			RootNumber:   "1+2+1+2 = 6, le nombre de l'harmonie et de la responsabilité.",
			MirrorEffect: "Le 12 répété reflète l'accomplissement qui se déverse dans le renouveau, un cycle se ferme quand un autre s'ouvre.",
			Analysis:     "Le six vous appelle à l'équilibre entre devoir et désir. Honorez vos engagements, mais pas au prix de votre propre renouveau.",
		},
	},
	"21:21": {
		Spiritual: Spiritual{
			Title:       "Récolte de l'Intention",
			Description: "21:21 signale qu'un cycle d'efforts porte ses fruits. Ce que vous avez mis en mouvement vous revient, amplifié.",
			Guidance:    "Recevez avec gratitude. Reconnaître ce qui arrive ouvre l'espace pour davantage.",
		},
		Angel: Angel{
			Name:     "Damabiah",
			Message:  "Une protection entoure vos entreprises, surtout celles qui aident les autres.",
			Guidance: "La générosité est maintenant un investissement que l'univers rend au centuple.",
		},
		Numerology: Numerology{
			Title:        "Commencements en Miroir",
			RootNumber:   "2+1+2+1 = 6, le nombre du gardien.",
			MirrorEffect: "Le 21 en miroir double l'énergie des nouveaux départs fondés sur le partenariat.",
			Analysis:     "Le six sous ce motif vous demande de partager votre récolte. Un succès gardé pour soi ne se multiplie pas.",
		},
	},
}
