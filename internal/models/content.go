package models

// Section is one full-screen page of the scrolling site.
type Section struct {
	ID              string `json:"id" yaml:"id"`
	Title           string `json:"title" yaml:"title"`
	Subtitle        string `json:"subtitle" yaml:"subtitle"`
	BackgroundImage string `json:"backgroundImage" yaml:"backgroundImage"`
	BackgroundVideo string `json:"backgroundVideo,omitempty" yaml:"backgroundVideo,omitempty"`
}

// ScheduleEvent is one entry on the celebration timeline, including the
// dress-code guidance and embed links the schedule modal shows.
type ScheduleEvent struct {
	Time                 string `json:"time" yaml:"time"`
	Title                string `json:"title" yaml:"title"`
	Description          string `json:"description" yaml:"description"`
	Location             string `json:"location" yaml:"location"`
	Icon                 string `json:"icon" yaml:"icon"`
	DressCode            string `json:"dressCode" yaml:"dressCode"`
	DressCodeDescription string `json:"dressCodeDescription" yaml:"dressCodeDescription"`
	DressCodeImage       string `json:"dressCodeImage" yaml:"dressCodeImage"`
	PinterestLinkMen     string `json:"pinterestLinkMen" yaml:"pinterestLinkMen"`
	PinterestLinkWomen   string `json:"pinterestLinkWomen" yaml:"pinterestLinkWomen"`
	GoogleMapLink        string `json:"googleMapLink,omitempty" yaml:"googleMapLink,omitempty"`
	IsLogistics          bool   `json:"isLogistics,omitempty" yaml:"isLogistics,omitempty"`
}

type FaqItem struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

type RegistryItem struct {
	Store string `json:"store" yaml:"store"`
	Image string `json:"image" yaml:"image"`
	URL   string `json:"url,omitempty" yaml:"url,omitempty"`
}

// SiteContent is the full read-only content document the site renders.
type SiteContent struct {
	Sections []Section       `json:"sections" yaml:"sections"`
	Schedule []ScheduleEvent `json:"schedule" yaml:"schedule"`
	Faqs     []FaqItem       `json:"faqs" yaml:"faqs"`
	Registry []RegistryItem  `json:"registry" yaml:"registry"`
}
