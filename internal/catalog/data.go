package catalog

func fraction(f float64) *float64 {
	return &f
}

func long(id, title, creator, color string, duration, views, likes, comments int, date string) Video {
	return Video{
		ID:            id,
		Title:         title,
		Creator:       creator,
		CreatorAvatar: color,
		Thumbnail:     color,
		Duration:      duration,
		Views:         views,
		Likes:         likes,
		Comments:      comments,
		UploadDate:    date,
		Kind:          KindLong,
	}
}

func short(id, title, creator, color string, duration, views, likes, comments int, date string, tag ShortCategory) Video {
	v := long(id, title, creator, color, duration, views, likes, comments, date)
	v.Kind = KindShort
	v.ShortCategory = tag
	return v
}

func withProgress(v Video, f float64) Video {
	v.Progress = fraction(f)
	return v
}

func mockVideos() []Video {
	return []Video{
		long("1", "Amazing Sunset Timelapse", "creator account 1", "#FFD93D", 245, 1200000, 85000, 3200, "2025-10-15"),
		long("2", "How to Cook Perfect Pasta", "creator account 2", "#FF8A3D", 180, 980000, 72000, 2800, "2025-10-14"),
		long("3", "City Lights at Night", "creator account 3", "#6BCB77", 320, 850000, 68000, 2100, "2025-10-13"),
		long("4", "Meditation Guide", "creator account 4", "#4D96FF", 600, 750000, 61000, 1900, "2025-10-12"),

		long("5", "Tech Review 2025", "creator account 5", "#9D4EDD", 420, 650000, 54000, 1600, "2025-10-11"),
		long("6", "Travel Vlog - Tokyo", "creator account 6", "#FF6B9D", 540, 580000, 48000, 1400, "2025-10-10"),
		long("7", "Workout Routine", "creator account 7", "#06D6A0", 300, 520000, 42000, 1200, "2025-10-09"),
		long("8", "Art Tutorial", "creator account 8", "#FFB627", 480, 480000, 39000, 1100, "2025-10-08"),

		long("9", "Funny Fails Compilation", "creator account 9", "#FF5A5F", 360, 1500000, 125000, 4200, "2025-10-07"),
		long("10", "Stand Up Comedy", "creator account 10", "#FFD93D", 420, 1200000, 98000, 3600, "2025-10-06"),
		long("11", "Pet Bloopers", "creator account 11", "#6BCB77", 280, 980000, 82000, 2900, "2025-10-05"),

		withProgress(long("12", "Documentary Series Ep 1", "creator account 12", "#4D96FF", 720, 450000, 36000, 980, "2025-10-04"), 0.35),
		withProgress(long("13", "Cooking Masterclass", "creator account 13", "#9D4EDD", 540, 380000, 31000, 850, "2025-10-03"), 0.62),
		withProgress(long("14", "Music Production Tutorial", "creator account 14", "#FF6B9D", 900, 320000, 27000, 720, "2025-10-02"), 0.18),

		long("15", "Morning Motivation", "creator account 15", "#06D6A0", 180, 890000, 74000, 2600, "2025-10-01"),
		long("16", "Success Stories", "creator account 16", "#FFB627", 480, 720000, 59000, 2100, "2025-09-30"),

		short("17", "Epic Fail 😂", "creator account 1", "#7B2CBF", 15, 2300000, 189000, 5200, "2025-10-15", ShortComedy),
		short("18", "Meme Compilation", "creator account 2", "#9D4EDD", 30, 1900000, 156000, 4100, "2025-10-14", ShortComedy),
		short("19", "Funny Moment", "creator account 3", "#C77DFF", 20, 1600000, 132000, 3600, "2025-10-13", ShortComedy),
		short("20", "Prank Gone Wrong", "creator account 4", "#E0AAFF", 25, 1400000, 115000, 3100, "2025-10-12", ShortComedy),
		short("21", "LOL Reaction", "creator account 5", "#7B2CBF", 18, 1200000, 98000, 2800, "2025-10-11", ShortComedy),
		short("22", "Comedy Skit", "creator account 6", "#9D4EDD", 22, 1100000, 91000, 2500, "2025-10-10", ShortComedy),

		short("23", "🎵 New Beat Drop", "Music Creator 1", "#FF6B9D", 28, 1850000, 152000, 3900, "2025-10-14", ShortMusic),
		short("24", "Cover Song Magic", "Music Creator 2", "#FF8A3D", 32, 1620000, 134000, 3400, "2025-10-13", ShortMusic),
		short("25", "Guitar Riff 🎸", "Music Creator 3", "#FFD93D", 19, 1450000, 119000, 3000, "2025-10-12", ShortMusic),
		short("26", "Vocal Performance", "Music Creator 4", "#06D6A0", 27, 1320000, 109000, 2700, "2025-10-11", ShortMusic),
		short("27", "DJ Mix Preview", "Music Creator 5", "#4D96FF", 30, 1180000, 97000, 2400, "2025-10-10", ShortMusic),

		short("28", "💃 Trending Dance", "Dance Creator 1", "#9D4EDD", 21, 2100000, 173000, 4600, "2025-10-13", ShortDance),
		short("29", "Choreography Tutorial", "Dance Creator 2", "#C77DFF", 29, 1720000, 142000, 3700, "2025-10-12", ShortDance),
		short("30", "Quick Dance", "Dance Creator 3", "#E0AAFF", 16, 1560000, 128000, 3300, "2025-10-11", ShortDance),
		short("31", "Dance Challenge", "Dance Creator 4", "#FF6FD8", 24, 1390000, 115000, 2900, "2025-10-10", ShortDance),
	}
}

type categorySpec struct {
	id   string
	name string
	ids  []string
}

var longCategorySpecs = []categorySpec{
	{id: "most-popular", name: "Most Popular Videos", ids: []string{"1", "2", "3", "4"}},
	{id: "trending", name: "Trending", ids: []string{"5", "6", "7", "8"}},
	{id: "comedy", name: "Comedy", ids: []string{"9", "10", "11"}},
	{id: "continue-watching", name: "Continue Watching"},
	{id: "motivation", name: "Motivation", ids: []string{"15", "16"}},
}

var shortsCategorySpecs = []struct {
	id   string
	name string
	tag  ShortCategory
}{
	{id: "comedy-shorts", name: "Comedy & Meme Shorts", tag: ShortComedy},
	{id: "music-shorts", name: "Music Shorts", tag: ShortMusic},
	{id: "dance-shorts", name: "Dance Shorts", tag: ShortDance},
}

func mockCreators() []Creator {
	return []Creator{
		{ID: "creator-1", Name: "Creator Alpha", Username: "@creatoralpha", Avatar: "#7B2CBF", Followers: 2500000, Following: 150, Videos: 234, Bio: "Creating amazing content every day! 🎬"},
		{ID: "creator-2", Name: "Creator Beta", Username: "@creatorbeta", Avatar: "#9D4EDD", Followers: 1800000, Following: 120, Videos: 189, Bio: "Your daily dose of entertainment ✨"},
		{ID: "creator-3", Name: "Creator Gamma", Username: "@creatorgamma", Avatar: "#C77DFF", Followers: 3200000, Following: 200, Videos: 456, Bio: "Making the internet a better place 🌟"},
		{ID: "creator-4", Name: "Creator Delta", Username: "@creatordelta", Avatar: "#E0AAFF", Followers: 1200000, Following: 95, Videos: 158, Bio: "Bringing smiles to your feed 😊"},
		{ID: "creator-5", Name: "Creator Epsilon", Username: "@creatorepsilon", Avatar: "#FF6FD8", Followers: 980000, Following: 78, Videos: 112, Bio: "Living life one video at a time 🎥"},
	}
}

// Creator pages share the same showcase uploads, credited to whoever is open.
func showcaseVideos(c Creator) []Video {
	return []Video{
		{ID: "creator-vid-1", Title: "Amazing Content Here", Creator: c.Name, CreatorAvatar: c.Avatar, Thumbnail: "#FF6B9D", Duration: 320, Views: 1200000, Likes: 45000, Comments: 1200, UploadDate: "2 days ago", Kind: KindLong},
		{ID: "creator-vid-2", Title: "Behind the Scenes", Creator: c.Name, CreatorAvatar: c.Avatar, Thumbnail: "#9D6CFF", Duration: 180, Views: 850000, Likes: 32000, Comments: 890, UploadDate: "5 days ago", Kind: KindLong},
		{ID: "creator-vid-3", Title: "Tutorial & Tips", Creator: c.Name, CreatorAvatar: c.Avatar, Thumbnail: "#6BCFFF", Duration: 420, Views: 2100000, Likes: 78000, Comments: 2300, UploadDate: "1 week ago", Kind: KindLong},
	}
}

// DefaultFollows lists the creators a fresh session already follows.
var DefaultFollows = []string{"creator-1", "creator-2", "creator-3", "creator-4", "creator-5"}

// AvatarChoices are the emoji avatars offered on the profile screen.
var AvatarChoices = []string{"😊", "🎨", "🚀", "⭐", "🎵", "🎬", "📸", "✨", "🔥", "💎", "🌟", "🎯"}

var defaultProfile = UserProfile{
	Username:    "user_account",
	DisplayName: "Your Profile",
	Avatar:      "UQ",
	Followers:   12500,
	Following:   384,
}
