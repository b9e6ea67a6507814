package domain

type Cours struct {
	ID                  string   `json:"id"`
	Nom                 string   `json:"nom"`
	Description         string   `json:"description"`
	Niveau              string   `json:"niveau"`  // "primaire", "college", "lycee", "superieur"
	Matiere             string   `json:"matiere"` // "Mathématiques", "Français", ...
	Syllabus            string   `json:"syllabus,omitempty"`
	DureeHeures         float64  `json:"dureeHeures"`
	CompetencesRequises []string `json:"competencesRequises"`
}
