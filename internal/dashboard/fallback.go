package dashboard

import (
	"time"

	"nativoseo/pkg/client"
)

// Banners shown while a page renders example data.
const (
	ReviewsFallbackBanner   = "Sistema de reseñas en mantenimiento. Mostrando datos de ejemplo."
	PostsFallbackBanner     = "No se pudieron cargar las publicaciones. Mostrando datos de ejemplo."
	AccountsFallbackBanner  = "No se pudieron cargar las cuentas. Mostrando datos de ejemplo."
	LocationsFallbackBanner = "No se pudieron cargar las ubicaciones. Mostrando datos de ejemplo."
	ProfileFallbackBanner   = "No se pudo cargar el resumen. Mostrando datos de ejemplo."
)

// Example location used by the posts page fallback.
const (
	ExampleLocationID   = "example-location"
	ExampleLocationName = "Ubicación de Ejemplo"
)

func exampleReviews(now time.Time) []client.Review {
	day := 24 * time.Hour

	return []client.Review{
		{
			ReviewID:   "example-review-1",
			Reviewer:   client.Reviewer{DisplayName: "Ana García"},
			StarRating: "FIVE",
			Comment:    "Excelente servicio, muy recomendable. El personal es muy amable.",
			CreateTime: now.Add(-2 * day).Format(time.RFC3339),
		},
		{
			ReviewID:   "example-review-2",
			Reviewer:   client.Reviewer{DisplayName: "Carlos López"},
			StarRating: "FOUR",
			Comment:    "Buena experiencia en general, volveré pronto.",
			CreateTime: now.Add(-5 * day).Format(time.RFC3339),
			ReviewReply: &client.ReviewReply{
				Comment:    "¡Gracias por tu visita, Carlos! Te esperamos pronto.",
				UpdateTime: now.Add(-4 * day).Format(time.RFC3339),
			},
		},
		{
			ReviewID:   "example-review-3",
			Reviewer:   client.Reviewer{DisplayName: "María Rodríguez"},
			StarRating: "TWO",
			Comment:    "El tiempo de espera fue demasiado largo.",
			CreateTime: now.Add(-9 * day).Format(time.RFC3339),
		},
	}
}

func exampleStats() client.ReviewStats {
	return client.ReviewStats{TotalReviewCount: 3, AverageRating: 3.7, PendingReviews: 2}
}

func exampleLocationSummary() client.LocationPostSummary {
	days := 3

	return client.LocationPostSummary{
		LocationID:        ExampleLocationID,
		LocationName:      ExampleLocationName,
		PostCount:         2,
		DaysSinceLastPost: &days,
	}
}

func examplePosts(now time.Time) []client.Post {
	info := &client.PostLocationInfo{LocationID: ExampleLocationID, LocationName: ExampleLocationName}

	return []client.Post{
		{
			Name:         "example-post-1",
			Summary:      "¡Nuevo menú de temporada disponible! Ven a probar nuestros platos.",
			State:        "LIVE",
			TopicType:    "STANDARD",
			CreateTime:   now.Add(-3 * 24 * time.Hour).Format(time.RFC3339),
			Media:        []client.MediaItem{},
			LocationInfo: info,
		},
		{
			Name:         "example-post-2",
			Summary:      "Este fin de semana 20% de descuento en todos los productos.",
			State:        "LIVE",
			TopicType:    "OFFER",
			CreateTime:   now.Add(-10 * 24 * time.Hour).Format(time.RFC3339),
			Media:        []client.MediaItem{},
			LocationInfo: info,
		},
	}
}

func exampleAccounts() []client.Account {
	return []client.Account{
		{Name: "accounts/example-account", AccountName: "Negocio de Ejemplo", Type: "PERSONAL", Role: "PRIMARY_OWNER"},
	}
}

func exampleLocations() []client.Location {
	return []client.Location{
		{Name: "locations/" + ExampleLocationID, Title: ExampleLocationName, BusinessStatus: "OPEN"},
	}
}
