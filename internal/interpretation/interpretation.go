// Package interpretation resolves a clock time and locale into spiritual,
// angel, and numerology content blocks. Resolution never fails: times without
// a curated entry get a generic interpretation templated on the time's type
// and root number.
package interpretation

import (
	"context"
	"fmt"

	"mirrortime/internal/cache"
	"mirrortime/internal/mirror"
)

// Spiritual is the spiritual framing content block.
type Spiritual struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Guidance    string `json:"guidance"`
}

// Angel is the angel-number framing content block.
type Angel struct {
	Name     string `json:"name"`
	Message  string `json:"message"`
	Guidance string `json:"guidance"`
}

// Numerology is the numerology framing content block.
type Numerology struct {
	Title        string `json:"title"`
	RootNumber   string `json:"rootNumber"`
	MirrorEffect string `json:"mirrorEffect"`
	Analysis     string `json:"analysis"`
}

// Interpretation is the full themed reading for a time.
type Interpretation struct {
	Type       string     `json:"type"`
	Spiritual  Spiritual  `json:"spiritual"`
	Angel      Angel      `json:"angel"`
	Numerology Numerology `json:"numerology"`
}

// Resolver resolves interpretations from the curated content tables with a
// templated fallback. Results are cached through Redis when available.
type Resolver struct{}

// NewResolver returns a Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns the interpretation for a time in the given locale
// ("en" or "fr"; anything else falls back to "en"). It always returns a value.
func (r *Resolver) Resolve(ctx context.Context, timeStr, locale string) Interpretation {
	if locale != "fr" {
		locale = "en"
	}

	var result Interpretation
	key := cache.InterpretationKey(locale, timeStr)
	// resolve never fails, so Aside cannot error: cache read failures
	// degrade to a direct resolve and result is always populated.
	_ = cache.Aside(ctx, key, &result, cache.InterpretationTTL, func() error {
		result = r.resolve(timeStr, locale)
		return nil
	})
	return result
}

func (r *Resolver) resolve(timeStr, locale string) Interpretation {
	timeType := mirror.TimeType(timeStr)

	table := curatedEN
	if locale == "fr" {
		table = curatedFR
	}
	if entry, ok := table[timeStr]; ok {
		entry.Type = timeType
		return entry
	}

	return genericInterpretation(timeStr, timeType, locale)
}

// genericInterpretation builds the templated fallback used for times without
// a curated entry.
func genericInterpretation(timeStr, timeType, locale string) Interpretation {
	root := mirror.RootNumber(timeStr)

	if locale == "fr" {
		return Interpretation{
			Type: timeType,
			Spiritual: Spiritual{
				Title:       "Réflexion Personnelle",
				Description: fmt.Sprintf("Cette heure (%s) vous invite à faire une pause et à réfléchir sur votre situation de vie actuelle.", timeStr),
				Guidance:    "Prenez un moment pour considérer les pensées qui étaient dans votre esprit lorsque vous avez remarqué cette heure.",
			},
			Angel: Angel{
				Name:     "Messager Divin",
				Message:  fmt.Sprintf("Cette heure (%s) porte un message unique à votre voyage spirituel actuel.", timeStr),
				Guidance: "Faites confiance à votre intuition sur ce que cette heure signifie pour vous personnellement.",
			},
			Numerology: Numerology{
				Title:        fmt.Sprintf("L'Énergie de %s", timeStr),
				RootNumber:   fmt.Sprintf("Le nombre racine de %s est %d.", timeStr, root),
				MirrorEffect: fmt.Sprintf("Le motif dans %s amplifie son énergie et sa signification dans votre vie.", timeStr),
				Analysis:     "Cette combinaison de nombres est apparue pour attirer votre attention sur des modèles dans votre vie qui nécessitent une reconnaissance ou un changement.",
			},
		}
	}

	return Interpretation{
		Type: timeType,
		Spiritual: Spiritual{
			Title:       "Personal Reflection",
			Description: fmt.Sprintf("This time (%s) invites you to pause and reflect on your current life situation.", timeStr),
			Guidance:    "Take a moment to consider what thoughts were in your mind as you noticed this time. The universe may be highlighting these areas for attention.",
		},
		Angel: Angel{
			Name:     "Divine Messenger",
			Message:  fmt.Sprintf("This time (%s) carries a message unique to your current spiritual journey.", timeStr),
			Guidance: "Trust your intuition about what this time means for you personally. Pay attention to recurring thoughts or feelings.",
		},
		Numerology: Numerology{
			Title:        fmt.Sprintf("The Energy of %s", timeStr),
			RootNumber:   fmt.Sprintf("The root number of %s is %d.", timeStr, root),
			MirrorEffect: fmt.Sprintf("The pattern in %s amplifies its energy and significance in your life.", timeStr),
			Analysis:     "This number combination has appeared to draw your attention to patterns in your life that need acknowledgment or change.",
		},
	}
}
