package participant

// ParticipantService contains read logic for the participants panel.
type ParticipantService struct {
	repo *ParticipantRepo
}

// NewParticipantService constructs a new ParticipantService.
func NewParticipantService(repo *ParticipantRepo) *ParticipantService {
	return &ParticipantService{repo: repo}
}

// List returns all participants.
func (s *ParticipantService) List() []Participant {
	return s.repo.List()
}
