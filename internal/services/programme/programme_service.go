package programme

// ProgrammeService contains read logic for the programmes panel.
type ProgrammeService struct {
	repo *ProgrammeRepo
}

// NewProgrammeService constructs a new ProgrammeService.
func NewProgrammeService(repo *ProgrammeRepo) *ProgrammeService {
	return &ProgrammeService{repo: repo}
}

// List returns all programmes.
func (s *ProgrammeService) List() []Programme {
	return s.repo.List()
}
