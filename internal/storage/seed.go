package storage

// Seed data installed on first run, when the durable store holds nothing for
// a collection's key. Once persisted, the stored value wins on every later
// start, so editing these only affects fresh installs.

func seedGroups() []Group {
	return []Group{
		{
			ID:          1,
			Name:        "Calculus 101 Finals Prep",
			Subject:     "Mathematics",
			Description: "Intensive study group for the upcoming finals. We focus on derivatives and integrals.",
			Members:     24,
			Image:       "https://images.unsplash.com/photo-1635070041078-e363dbe005cb?w=800&auto=format&fit=crop&q=60",
		},
		{
			ID:          2,
			Name:        "Physics Lab Partners",
			Subject:     "Physics",
			Description: "Coordinating lab reports and discussing quantum mechanics theories.",
			Members:     8,
			Image:       "https://images.unsplash.com/photo-1636466497217-26a8cbeaf0aa?w=800&auto=format&fit=crop&q=60",
		},
		{
			ID:          3,
			Name:        "CS50 Introduction",
			Subject:     "Computer Science",
			Description: "Beginner friendly group for CS50 students. Python and C help available.",
			Members:     156,
			Image:       "https://images.unsplash.com/photo-1555066931-4365d14bab8c?w=800&auto=format&fit=crop&q=60",
		},
		{
			ID:          4,
			Name:        "Art History Modernism",
			Subject:     "Arts",
			Description: "Discussing the impact of modernism on contemporary art.",
			Members:     12,
			Image:       "https://images.unsplash.com/photo-1579783902614-a3fb392796a5?w=800&auto=format&fit=crop&q=60",
		},
		{
			ID:          5,
			Name:        "Organic Chemistry",
			Subject:     "Chemistry",
			Description: "Study group for O-Chem. Don't suffer alone!",
			Members:     45,
			Image:       "https://images.unsplash.com/photo-1532094349884-543bc11b234d?w=800&auto=format&fit=crop&q=60",
		},
	}
}

func seedChat() []Message {
	return []Message{
		{
			ID:      1,
			User:    "Alex Johnson",
			Avatar:  "https://i.pravatar.cc/100?img=11",
			Content: "Has anyone solved problem 4 on the practice set yet? I'm stuck on the integration part.",
			Time:    "10:30 AM",
			Role:    RoleAdmin,
		},
		{
			ID:      2,
			User:    "Sarah Chen",
			Avatar:  "https://i.pravatar.cc/100?img=5",
			Content: "Yeah! You need to use substitution u = x^2. It simplifies nicely after that.",
			Time:    "10:32 AM",
			Role:    RoleMember,
		},
		{
			ID:      3,
			User:    "Mike Ross",
			Avatar:  "https://i.pravatar.cc/100?img=3",
			Content: "Wait, I thought we had to use integration by parts?",
			Time:    "10:33 AM",
			Role:    RoleMember,
		},
		{
			ID:      4,
			User:    "Sarah Chen",
			Avatar:  "https://i.pravatar.cc/100?img=5",
			Content: "You can, but it's way longer. Try u-sub first.",
			Time:    "10:34 AM",
			Role:    RoleMember,
		},
		{
			ID:      5,
			User:    "Alex Johnson",
			Avatar:  "https://i.pravatar.cc/100?img=11",
			Content: "Oh wow, that works perfectly. Thanks Sarah!",
			Time:    "10:35 AM",
			Role:    RoleAdmin,
		},
	}
}

// seedMessages seeds every group with the same starter conversation, matching
// first-run behavior of the demo.
func seedMessages() map[int64][]Message {
	messages := make(map[int64][]Message)
	for _, g := range seedGroups() {
		messages[g.ID] = seedChat()
	}
	return messages
}

func seedThreads() []DirectThread {
	return []DirectThread{
		{
			ID:            1,
			ContactName:   "Sarah Chen",
			ContactAvatar: "https://i.pravatar.cc/100?img=5",
			LastMessage:   "Did you finish the problem set?",
			Time:          "10:45 AM",
			Unread:        2,
			Status:        StatusOnline,
			Messages: []Message{
				{
					ID:      1,
					User:    "Sarah Chen",
					Avatar:  "https://i.pravatar.cc/100?img=5",
					Content: "Hey! Are you going to the review session tonight?",
					Time:    "10:40 AM",
					Role:    RoleMember,
				},
				{
					ID:      2,
					User:    "Sarah Chen",
					Avatar:  "https://i.pravatar.cc/100?img=5",
					Content: "Did you finish the problem set?",
					Time:    "10:45 AM",
					Role:    RoleMember,
				},
			},
		},
		{
			ID:            2,
			ContactName:   "Mike Ross",
			ContactAvatar: "https://i.pravatar.cc/100?img=3",
			LastMessage:   "Thanks for the lab notes!",
			Time:          "Yesterday",
			Unread:        0,
			Status:        StatusAway,
			Messages: []Message{
				{
					ID:      1,
					User:    "Mike Ross",
					Avatar:  "https://i.pravatar.cc/100?img=3",
					Content: "Thanks for the lab notes!",
					Time:    "Yesterday",
					Role:    RoleMember,
				},
			},
		},
		{
			ID:            3,
			ContactName:   "Jessica Lee",
			ContactAvatar: "https://i.pravatar.cc/100?img=9",
			LastMessage:   "See you at the library",
			Time:          "Monday",
			Unread:        0,
			Status:        StatusOffline,
			Messages: []Message{
				{
					ID:      1,
					User:    "Jessica Lee",
					Avatar:  "https://i.pravatar.cc/100?img=9",
					Content: "See you at the library",
					Time:    "Monday",
					Role:    RoleMember,
				},
			},
		},
	}
}

func seedActivities() []Activity {
	return []Activity{
		{
			User:   "Sarah Chen",
			Action: "uploaded a new resource to",
			Target: "Calculus 101",
			Time:   "2 mins ago",
			Type:   "upload",
		},
		{
			User:   "Mike Ross",
			Action: "started a video call in",
			Target: "Physics Lab",
			Time:   "15 mins ago",
			Type:   "call",
		},
		{
			User:   "Jessica Lee",
			Action: "posted a question in",
			Target: "CS50 Intro",
			Time:   "1 hour ago",
			Type:   "message",
		},
	}
}

func seedResources() []Resource {
	return []Resource{
		{Name: "Week 4 Lecture Notes.pdf", Size: "2.4 MB", UploadedBy: "Prof. Smith"},
		{Name: "Practice Exam 2024.docx", Size: "1.1 MB", UploadedBy: "Sarah Chen"},
		{Name: "Integration Cheat Sheet.png", Size: "450 KB", UploadedBy: "Alex J."},
		{Name: "Textbook Chapter 5.pdf", Size: "15 MB", UploadedBy: "Mike Ross"},
	}
}
