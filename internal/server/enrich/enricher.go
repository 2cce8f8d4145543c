// Package enrich produces an AI-generated job title and short biography
// for a person from their name. Generation never fails from the caller's
// point of view: every error is logged and replaced by Fallback.
package enrich

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/registre/internal/server/models"
)

// Enricher generates a profile for a person.
type Enricher interface {
	GenerateProfile(ctx context.Context, firstName, lastName string) models.Profile
}

// Fallback is returned whenever generation fails.
var Fallback = models.Profile{
	Role: "Nouvel Utilisateur",
	Bio:  "Passionné par la technologie et l'innovation.",
}

// Prompt is the French instruction sent to the model.
func Prompt(firstName, lastName string) string {
	return fmt.Sprintf(
		"Génère un profil fictif, professionnel et créatif pour une personne nommée %s %s. "+
			"Je veux un titre de poste moderne (ex: \"Architecte Cloud\", \"Botaniste Urbain\") "+
			"et une courte biographie (max 20 mots) amusante ou inspirante.",
		firstName, lastName)
}
