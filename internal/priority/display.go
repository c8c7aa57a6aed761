package priority

// DisplayMetadata is presentation data for a level. It carries no business
// meaning and must not be used to derive or validate a level.
type DisplayMetadata struct {
	Label         string `json:"label"`
	LabelFr       string `json:"labelFr"`
	Color         string `json:"color"`
	BgColor       string `json:"bgColor"`
	Description   string `json:"description"`
	DescriptionFr string `json:"descriptionFr"`
}

var displayTable = [...]DisplayMetadata{
	Critical: {
		Label:         "Critical",
		LabelFr:       "Critique",
		Color:         "#b91c1c",
		BgColor:       "#fee2e2",
		Description:   "Immediate danger to life. Deploy all available resources now.",
		DescriptionFr: "Danger immédiat pour la vie. Déployer immédiatement toutes les ressources disponibles.",
	},
	High: {
		Label:         "High",
		LabelFr:       "Élevé",
		Color:         "#c2410c",
		BgColor:       "#ffedd5",
		Description:   "Significant risk. Active search and investigation required.",
		DescriptionFr: "Risque important. Recherche et enquête actives requises.",
	},
	Medium: {
		Label:         "Medium",
		LabelFr:       "Moyen",
		Color:         "#a16207",
		BgColor:       "#fef9c3",
		Description:   "Elevated concern. Follow up promptly and review regularly.",
		DescriptionFr: "Préoccupation accrue. Assurer un suivi rapide et une révision régulière.",
	},
	Low: {
		Label:         "Low",
		LabelFr:       "Faible",
		Color:         "#1d4ed8",
		BgColor:       "#dbeafe",
		Description:   "Limited risk indicators. Standard investigation.",
		DescriptionFr: "Indicateurs de risque limités. Enquête standard.",
	},
	Minimal: {
		Label:         "Minimal",
		LabelFr:       "Minimal",
		Color:         "#15803d",
		BgColor:       "#dcfce7",
		Description:   "No significant risk indicators. Monitor for changes.",
		DescriptionFr: "Aucun indicateur de risque important. Surveiller l'évolution.",
	},
}

// Display returns the presentation metadata for l. Out-of-range values are
// clamped to the nearest level so rendering never fails.
func Display(l Level) DisplayMetadata {
	if l < Critical {
		l = Critical
	}
	if l > Minimal {
		l = Minimal
	}
	return displayTable[l]
}
