package training

var videos = []Video{
	{
		ID:          "1",
		Title:       "Building Confidence & Self-Esteem",
		Description: "Learn techniques to build self-confidence and develop a positive self-image for personal and professional success",
		Thumbnail:   "/api/placeholder/400/225",
		Duration:    "12:45",
		Instructor:  "Sarah Johnson",
		VideoURL:    "https://www.youtube.com/watch?v=MDJ8a07NokM",
	},
	{
		ID:          "2",
		Title:       "CV Writing & Job Applications",
		Description: "Step-by-step guide to creating an impactful CV and writing compelling job applications that stand out",
		Thumbnail:   "/api/placeholder/400/225",
		Duration:    "18:30",
		Instructor:  "Michael Thompson",
		VideoURL:    "https://www.youtube.com/watch?v=jBbnb71RnEM",
	},
	{
		ID:          "3",
		Title:       "Interview Skills & Preparation",
		Description: "Master the art of interviews with practical tips on preparation, body language, and answering tough questions",
		Thumbnail:   "/api/placeholder/400/225",
		Duration:    "22:15",
		Instructor:  "Emily Carter",
		VideoURL:    "https://www.youtube.com/watch?v=r3g-7_W4AuI",
	},
	{
		ID:          "4",
		Title:       "Financial Literacy for Young Adults",
		Description: "Understanding budgeting, saving, and managing money effectively for a secure financial future",
		Thumbnail:   "/api/placeholder/400/225",
		Duration:    "16:00",
		Instructor:  "David Williams",
		VideoURL:    "https://www.youtube.com/watch?v=ii--386Sz1w",
	},
	{
		ID:          "5",
		Title:       "Communication & Teamwork Skills",
		Description: "Develop essential communication skills and learn how to work effectively in team environments",
		Thumbnail:   "/api/placeholder/400/225",
		Duration:    "14:20",
		Instructor:  "Lisa Anderson",
		VideoURL:    "https://www.youtube.com/watch?v=9Ot7z51zD6U",
	},
	{
		ID:          "6",
		Title:       "Goal Setting & Career Planning",
		Description: "Create a roadmap for your future with effective goal-setting strategies and career planning techniques",
		Thumbnail:   "/api/placeholder/400/225",
		Duration:    "20:45",
		Instructor:  "James Mitchell",
		VideoURL:    "https://www.youtube.com/watch?v=kWVNuajgPjI",
	},
}

var availableAttendees = []AvailableAttendee{
	{ID: "1", Name: "Alice Johnson", Email: "alice.johnson@example.com"},
	{ID: "2", Name: "Bob Smith", Email: "bob.smith@example.com"},
	{ID: "3", Name: "Carol Williams", Email: "carol.williams@example.com"},
	{ID: "4", Name: "David Brown", Email: "david.brown@example.com"},
	{ID: "5", Name: "Emily Davis", Email: "emily.davis@example.com"},
}

// BehaviourNoteCategories are the five fixed categories offered by the
// "Mark Attendance" modal.
var BehaviourNoteCategories = []string{
	"Excellent",
	"Good",
	"Satisfactory",
	"Needs Improvement",
	"Disruptive",
}
