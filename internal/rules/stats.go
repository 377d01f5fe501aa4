package rules

import "github.com/Ramakrishnajakkula/SPC-backend/internal/models"

// Stats summarizes one hackathon's registrations.
type Stats struct {
	Total             int                                   `json:"total"`
	ByStatus          map[models.RegistrationStatus]int     `json:"by_status"`
	ByType            map[models.ParticipationType]int      `json:"by_type"`
	CheckedIn         int                                   `json:"checked_in"`
	ProjectsSubmitted int                                   `json:"projects_submitted"`
	Skills            map[string]int                        `json:"skills"`
	Organizations     map[string]int                        `json:"organizations"`
}

// Aggregate folds a registration set into counts in a single pass. Map
// iteration order is unspecified, as usual.
func Aggregate(regs []models.Registration) Stats {
	s := Stats{
		ByStatus:      make(map[models.RegistrationStatus]int),
		ByType:        make(map[models.ParticipationType]int),
		Skills:        make(map[string]int),
		Organizations: make(map[string]int),
	}

	for i := range regs {
		r := &regs[i]
		s.Total++
		s.ByStatus[r.Status]++
		s.ByType[r.ParticipationType]++
		if r.CheckedIn {
			s.CheckedIn++
		}
		if r.ProjectSubmitted {
			s.ProjectsSubmitted++
		}
		for _, skill := range r.Skills {
			s.Skills[skill]++
		}
		if r.Organization != "" {
			s.Organizations[r.Organization]++
		}
	}

	return s
}
