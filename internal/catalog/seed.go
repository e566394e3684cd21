package catalog

import (
	"fmt"
	"strings"
	"time"

	"lines-be/internal/domain"
)

const (
	sampleVideoURL = "https://www.w3schools.com/html/mov_bbb.mp4"
	seedCloneCount = 4
	day            = 24 * time.Hour
)

func picsum(seed string, w, h int) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/%d/%d", seed, w, h)
}

// SeedChannels returns the static channel directory
func SeedChannels() []domain.FollowedChannel {
	return []domain.FollowedChannel{
		{Name: "CodeMasters", Handle: "@codemasters", SubscriberCount: 1250000, AvatarURL: picsum("ch2", 48, 48)},
		{Name: "Nature Explorers", Handle: "@natureexplorers", SubscriberCount: 2300000, AvatarURL: picsum("ch1", 48, 48)},
		{Name: "FutureVisions", Handle: "@futurevisions", SubscriberCount: 4100000, AvatarURL: picsum("ch4", 48, 48)},
		{Name: "DesignScapes", Handle: "@designscapes", SubscriberCount: 780000, AvatarURL: picsum("ch3", 48, 48)},
		{Name: "Gourmet Chef", Handle: "@gourmetchef", SubscriberCount: 950000, AvatarURL: picsum("ch5", 48, 48), IsLive: true},
		{Name: "3DArts", Handle: "@3darts", SubscriberCount: 450000, AvatarURL: picsum("ch6", 48, 48)},
		{Name: "ZenLife", Handle: "@zenlife", SubscriberCount: 620000, AvatarURL: picsum("ch7", 48, 48)},
		{Name: "TechExplained", Handle: "@techexplained", SubscriberCount: 3100000, AvatarURL: picsum("ch8", 48, 48)},
	}
}

// SeedVideos returns the base videos followed by four re-thumbnailed clones of each
func SeedVideos(now time.Time) []domain.Video {
	base := baseVideos(now.UTC())
	out := make([]domain.Video, 0, len(base)*(seedCloneCount+1))
	out = append(out, base...)
	for n := 1; n <= seedCloneCount; n++ {
		tag := fmt.Sprintf("clone%d", n)
		for _, v := range base {
			v.ID = v.ID + "-" + tag
			v.ThumbnailURL = strings.Replace(v.ThumbnailURL, "/seed/", "/seed/"+tag+"-", 1)
			out = append(out, v)
		}
	}
	return out
}

func baseVideos(now time.Time) []domain.Video {
	ago := func(d time.Duration) time.Time { return now.Add(-d) }

	user := func(n int) string { return picsum(fmt.Sprintf("user%d", n), 40, 40) }

	videos := []domain.Video{
		{
			ID:               "1",
			Title:            "Exploring the Alps: A 4K Drone Film",
			ThumbnailURL:     picsum("alps", 640, 360),
			ChannelName:      "Nature Explorers",
			ChannelAvatarURL: picsum("ch1", 48, 48),
			ViewCount:        1200000,
			UploadDate:       ago(21 * day),
			Duration:         "15:45",
			Description:      "Join us on an epic journey through the breathtaking landscapes of the Swiss Alps. Filmed entirely in 4K with state-of-the-art drones, this film captures the majestic beauty of the mountains like never before. From serene lakes to towering peaks, experience the Alps from a new perspective.",
			Comments: []domain.Comment{
				{
					ID: "c1", AuthorID: "user1", Author: "Travel Bug", AvatarURL: user(1),
					Text: "Absolutely stunning cinematography!", Date: ago(14 * day), Likes: 243,
					Replies: []domain.Comment{
						{
							ID: "c1-r1", AuthorID: "ch1", Author: "Nature Explorers", AvatarURL: picsum("ch1", 48, 48),
							Text: "Thank you! We really appreciate the feedback.", Date: ago(14*day - time.Second), Likes: 45,
							Replies: []domain.Comment{},
						},
						{
							ID: "c1-r2", AuthorID: "user2", Author: "Mountain Man", AvatarURL: user(2),
							Text: "I agree, the drone shots were breathtaking.", Date: ago(7 * day), Likes: 18,
							Replies: []domain.Comment{},
						},
					},
				},
				{
					ID: "c2", AuthorID: "user2", Author: "Mountain Man", AvatarURL: user(2),
					Text: "Makes me want to pack my bags and go hiking right now.", Date: ago(7*day - time.Second), Likes: 88,
					Replies: []domain.Comment{},
				},
				{
					ID: "c-current-user-1", AuthorID: CurrentUserID, Author: CurrentUserName, AvatarURL: CurrentUserAvatar,
					Text: "This is a comment from the current user. It should be editable and deletable.", Date: ago(3 * day), Likes: 15,
					Replies: []domain.Comment{},
				},
			},
			Likes:       120000,
			Dislikes:    1500,
			Followers:   2300000,
			Category:    "Travel",
			Badge:       domain.Badge4K,
			Rank:        3,
			CountryCode: "ch",
		},
		{
			ID:               "2",
			Title:            "Ultimate Guide to React Hooks in 2024",
			ThumbnailURL:     picsum("react", 640, 360),
			ChannelName:      "CodeMasters",
			ChannelAvatarURL: picsum("ch2", 48, 48),
			ViewCount:        890000,
			UploadDate:       ago(30 * day),
			Duration:         "45:10",
			Description:      "Master React Hooks with this comprehensive guide. We cover useState, useEffect, useContext, useReducer, and custom hooks with practical examples and best practices for building modern, efficient React applications.",
			Comments: []domain.Comment{
				{
					ID: "c3", AuthorID: "user3", Author: "DevDude", AvatarURL: user(3),
					Text: "This is the best explanation of hooks I have ever seen.", Date: ago(21 * day), Likes: 512,
					Replies: []domain.Comment{},
				},
			},
			Likes:       45000,
			Dislikes:    300,
			Followers:   1250000,
			Category:    "Coding",
			Rank:        4,
			CountryCode: "de",
		},
		{
			ID:               "3",
			Title:            "The Art of Minimalist Web Design",
			ThumbnailURL:     picsum("design", 640, 360),
			ChannelName:      "DesignScapes",
			ChannelAvatarURL: picsum("ch3", 48, 48),
			ViewCount:        540000,
			UploadDate:       ago(60 * day),
			Duration:         "22:30",
			Description:      "Discover the principles of minimalist web design. Learn how to create beautiful, functional, and user-friendly websites by focusing on simplicity, whitespace, and typography. Less is more!",
			Comments:         []domain.Comment{},
			Likes:            23000,
			Dislikes:         120,
			Followers:        780000,
			Category:         "Design",
		},
		{
			ID:               "4",
			Title:            "Cyberpunk City - A Cinematic Journey",
			ThumbnailURL:     picsum("cyberpunk", 640, 360),
			ChannelName:      "FutureVisions",
			ChannelAvatarURL: picsum("ch4", 48, 48),
			ViewCount:        2500000,
			UploadDate:       ago(7 * day),
			Duration:         "8:12",
			Description:      "Immerse yourself in a dystopian future with this cinematic exploration of a cyberpunk city. Neon lights, flying vehicles, and towering skyscrapers create a visually stunning experience.",
			Comments: []domain.Comment{
				{
					ID: "c4", AuthorID: "user4", Author: "SciFiFan", AvatarURL: user(4),
					Text: "The visuals are insane! Great work.", Date: ago(5 * day), Likes: 302,
					Replies: []domain.Comment{},
				},
				{
					ID: "c5", AuthorID: "user5", Author: "GamerGirl", AvatarURL: user(5),
					Text: "Reminds me of Blade Runner. Love it!", Date: ago(2 * day), Likes: 198,
					Replies: []domain.Comment{},
				},
			},
			Likes:       250000,
			Dislikes:    5000,
			Followers:   4100000,
			Category:    "Gaming",
			Rank:        1,
			CountryCode: "jp",
		},
		{
			ID:               "5",
			Title:            "Cooking the Perfect Steak",
			ThumbnailURL:     picsum("steak", 640, 360),
			ChannelName:      "Gourmet Chef",
			ChannelAvatarURL: picsum("ch5", 48, 48),
			ViewCount:        980000,
			UploadDate:       ago(4 * day),
			Duration:         "12:05",
			Description:      "Learn the secrets to cooking the perfect steak every time. From selecting the right cut of meat to achieving the perfect sear and internal temperature, this guide covers it all.",
			Comments:         []domain.Comment{},
			Likes:            80000,
			Dislikes:         850,
			Followers:        950000,
			Category:         "Cooking",
			Badge:            domain.BadgeLive,
			Rank:             5,
			CountryCode:      "fr",
		},
		{
			ID:               "6",
			Title:            "Introduction to 3D Modeling with Blender",
			ThumbnailURL:     picsum("blender", 640, 360),
			ChannelName:      "3DArts",
			ChannelAvatarURL: picsum("ch6", 48, 48),
			ViewCount:        320000,
			UploadDate:       ago(90 * day),
			Duration:         "1:15:20",
			Description:      "A beginner-friendly introduction to the world of 3D modeling using Blender. Learn the interface, basic modeling techniques, and create your first 3D object from scratch.",
			Comments: []domain.Comment{
				{
					ID: "c6", AuthorID: "user6", Author: "Newbie Modeler", AvatarURL: user(6),
					Text: "Finally, a tutorial I can understand!", Date: ago(30 * day), Likes: 76,
					Replies: []domain.Comment{},
				},
			},
			Likes:     15000,
			Dislikes:  200,
			Followers: 450000,
			Category:  "Design",
		},
		{
			ID:               "7",
			Title:            "Peaceful Morning Yoga Flow",
			ThumbnailURL:     picsum("yoga", 640, 360),
			ChannelName:      "ZenLife",
			ChannelAvatarURL: picsum("ch7", 48, 48),
			ViewCount:        410000,
			UploadDate:       ago(14 * day),
			Duration:         "25:00",
			Description:      "Start your day with this gentle and peaceful morning yoga flow. This practice is designed to awaken your body, calm your mind, and set a positive tone for the day ahead. Suitable for all levels.",
			Comments:         []domain.Comment{},
			Likes:            18000,
			Dislikes:         90,
			Followers:        620000,
			Category:         "Health",
		},
		{
			ID:               "8",
			Title:            "The Rise of AI: What to Expect",
			ThumbnailURL:     picsum("ai", 640, 360),
			ChannelName:      "TechExplained",
			ChannelAvatarURL: picsum("ch8", 48, 48),
			ViewCount:        1800000,
			UploadDate:       ago(23 * time.Hour),
			Duration:         "32:40",
			Description:      "Artificial Intelligence is evolving at an unprecedented pace. In this documentary, we explore the current state of AI, its potential impact on society, and what the future may hold. A deep dive into machine learning, neural networks, and the ethical questions surrounding AI.",
			Comments: []domain.Comment{
				{
					ID: "c7", AuthorID: "user7", Author: "Future Is Now", AvatarURL: user(7),
					Text: "Mind-blowing and a little scary at the same time.", Date: ago(15 * time.Minute), Likes: 420,
					Replies: []domain.Comment{},
				},
				{
					ID: "c8", AuthorID: "user8", Author: "Curious Mind", AvatarURL: user(8),
					Text: "Very well-researched and presented. Thanks!", Date: ago(time.Hour), Likes: 215,
					Replies: []domain.Comment{},
				},
			},
			Likes:       150000,
			Dislikes:    7000,
			Followers:   3100000,
			Category:    "Technology",
			Rank:        2,
			CountryCode: "us",
		},
		{
			ID:               "9",
			Title:            "How to make Sourdough Bread",
			ThumbnailURL:     picsum("sourdough", 640, 360),
			ChannelName:      "Gourmet Chef",
			ChannelAvatarURL: picsum("ch5", 48, 48),
			ViewCount:        550000,
			UploadDate:       ago(6 * time.Hour),
			Duration:         "18:30",
			Description:      "Your complete guide to baking delicious sourdough bread at home. From starter to final bake.",
			Comments:         []domain.Comment{},
			Likes:            45000,
			Dislikes:         400,
			Followers:        950000,
			Category:         "Cooking",
		},
		{
			ID:               "10",
			Title:            "Live Coding: Building a React Component Library",
			ThumbnailURL:     picsum("livecode", 640, 360),
			ChannelName:      "CodeMasters",
			ChannelAvatarURL: picsum("ch2", 48, 48),
			ViewCount:        12000,
			UploadDate:       ago(30 * time.Second),
			Duration:         "2:30:15",
			Description:      "Join me live as I build a new component library from scratch using React and TypeScript.",
			Comments:         []domain.Comment{},
			Likes:            2000,
			Dislikes:         50,
			Followers:        1250000,
			Category:         "Coding",
		},
	}

	for i := range videos {
		videos[i].VideoURL = sampleVideoURL
		videos[i].Visibility = domain.VisibilityPublic
	}
	return videos
}
