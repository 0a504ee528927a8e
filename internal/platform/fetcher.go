package platform

import (
	"context"

	model "github.com/ravisharma-09/TSAP-Club/internal/models"
)

// Fetcher est l'interface commune des trois plateformes. Contrat:
//   - handle vide: retourne (nil, nil) sans appel réseau
//   - compte introuvable: (nil, nil)
//   - échec attendu (transport, parsing): soit une erreur, soit un
//     enregistrement marqué en échec, selon la plateforme — jamais de panic
//
// Le fetcher CodeChef scrape une page HTML et retourne un marqueur d'échec
// explicite plutôt qu'une erreur, pour distinguer "rien trouvé" de
// "plateforme en erreur".
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context, handle string) (*model.PlatformStats, error)
}
