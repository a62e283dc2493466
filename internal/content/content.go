// Package content loads the read-only site content (sections, schedule,
// FAQs, registry) served alongside the guest API.
package content

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"wedding-site/internal/models"
)

// Load reads the site content from a YAML file. An empty path or a missing
// file yields the built-in defaults; a present but unreadable or malformed
// file is an error, since serving defaults would silently hide it.
func Load(path string) (*models.SiteContent, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read site content: %w", err)
	}
	var site models.SiteContent
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("failed to parse site content: %w", err)
	}
	return &site, nil
}

// Default returns the built-in site content for the Aarav & Diya wedding.
func Default() *models.SiteContent {
	const (
		pinterestMen   = "https://www.pinterest.com/ronak47/my-wedding-board/"
		pinterestWomen = "https://www.pinterest.com/ronak47/unique-bridal-jewelry/"
		venueMap       = "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d58041.883059430926!2d73.65088462829591!3d24.602386892957355!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x3967e5ead3e3d2d1%3A0x957c469e27a6755d!2sOm%20Glass%20Decor!5e0!3m2!1sen!2sin!4v1767201583717!5m2!1sen!2sin"
		loopVideo      = "https://cdn.pixabay.com/video/2025/01/26/254787_large.mp4"
	)

	return &models.SiteContent{
		Sections: []models.Section{
			{
				ID:              "welcome",
				Title:           "Welcome",
				Subtitle:        "A Celebration of Love",
				BackgroundImage: "https://images.unsplash.com/photo-1511795409834-ef04bbd61622?q=80&w=2069&auto=format&fit=crop",
				BackgroundVideo: loopVideo,
			},
			{
				ID:              "schedule",
				Title:           "Program",
				Subtitle:        "Ceremony & Celebration",
				BackgroundImage: "https://images.unsplash.com/photo-1497290756760-23ac55edf0d6?q=80&w=1950&auto=format&fit=crop",
				BackgroundVideo: loopVideo,
			},
			{
				ID:              "rsvp",
				Title:           "Guest Details",
				Subtitle:        "Please RSVP by Mar 31st",
				BackgroundImage: "https://images.unsplash.com/photo-1516961642265-531546e84af2?q=80&w=1974&auto=format&fit=crop",
				BackgroundVideo: loopVideo,
			},
			{
				ID:              "faq",
				Title:           "Details",
				Subtitle:        "Guest Information",
				BackgroundImage: "https://images.unsplash.com/photo-1494438639946-1ebd1d20bf85?q=80&w=2068&auto=format&fit=crop",
				BackgroundVideo: loopVideo,
			},
		},
		Schedule: []models.ScheduleEvent{
			{
				Time:                 "Oct 23 - 7:00 PM",
				Title:                "Welcome Cocktail",
				Description:          "Kickstarting the celebrations with an elegant evening of cocktails and conversation.",
				Location:             "Skydeck Lounge",
				Icon:                 "glass",
				DressCode:            "Cocktail Chic",
				DressCodeDescription: "Suits, Evening Gowns, and effortless glamour.",
				DressCodeImage:       "https://images.unsplash.com/photo-1514362545857-3bc16549766b?q=80&w=2070&auto=format&fit=crop",
				PinterestLinkMen:     pinterestMen,
				PinterestLinkWomen:   pinterestWomen,
				GoogleMapLink:        venueMap,
			},
			{
				Time:                 "Oct 24 - 12:00 PM",
				Title:                "Guest Check-in",
				Description:          "Welcome to Udaipur! Please check in at the main lobby and refresh before the festivities.",
				Location:             "Hotel Lobby",
				Icon:                 "key",
				DressCode:            "Travel Casual",
				DressCodeDescription: "Comfortable travel wear.",
				DressCodeImage:       "https://images.unsplash.com/photo-1566073771259-6a8506099945?q=80&w=2070&auto=format&fit=crop",
				GoogleMapLink:        venueMap,
				IsLogistics:          true,
			},
			{
				Time:                 "Oct 24 - 4:00 PM",
				Title:                "Sangeet Night",
				Description:          "An intimate evening of music, acoustic melodies, and shared stories.",
				Location:             "The Glass House",
				Icon:                 "music",
				DressCode:            "Indo-Western Glam",
				DressCodeDescription: "Sparkles, Lehengas, or Cocktail Attire.",
				DressCodeImage:       "https://images.unsplash.com/photo-1533174072545-e8d4aa97edf9?q=80&w=2070&auto=format&fit=crop",
				PinterestLinkMen:     pinterestMen,
				PinterestLinkWomen:   pinterestWomen,
				GoogleMapLink:        venueMap,
			},
			{
				Time:                 "Oct 25 - 10:00 AM",
				Title:                "Haldi Ceremony",
				Description:          "A traditional ceremony to bless the couple with turmeric and love.",
				Location:             "Garden Terrace",
				Icon:                 "sun",
				DressCode:            "Shades of Yellow",
				DressCodeDescription: "Light Kurta Pajamas, Yellow Sarees or Sundresses.",
				DressCodeImage:       "https://images.unsplash.com/photo-1604605949649-6a3074092437?q=80&w=2000&auto=format&fit=crop",
				PinterestLinkMen:     pinterestMen,
				PinterestLinkWomen:   pinterestWomen,
				GoogleMapLink:        venueMap,
			},
			{
				Time:                 "Oct 25 - 7:00 PM",
				Title:                "The Wedding",
				Description:          "The Varmala and Pheras followed by a seated dinner.",
				Location:             "Lakeside Pavilion",
				Icon:                 "heart",
				DressCode:            "Formal Traditional",
				DressCodeDescription: "Sherwanis, Silk Sarees, or Formal Suits.",
				DressCodeImage:       "https://images.unsplash.com/photo-1583934555053-9f830d082531?q=80&w=2070&auto=format&fit=crop",
				PinterestLinkMen:     pinterestMen,
				PinterestLinkWomen:   pinterestWomen,
				GoogleMapLink:        venueMap,
			},
		},
		Faqs: []models.FaqItem{
			{
				Question: "What is the dress code?",
				Answer:   "Formal or Traditional Indian attire. We love a palette of pastels, creams, and earthy tones to match the setting.",
			},
			{
				Question: "Are children welcome?",
				Answer:   "To ensure a relaxing evening for everyone, the reception will be an adults-only occasion.",
			},
			{
				Question: "Is there parking available?",
				Answer:   "Valet parking is available at the main entrance of the venue.",
			},
		},
		Registry: []models.RegistryItem{
			{
				Store: "The Couple's Fund",
				Image: "https://images.unsplash.com/photo-1579621970563-ebec7560ff3e?q=80&w=2071&auto=format&fit=crop",
				URL:   "#",
			},
			{
				Store: "Home & Living",
				Image: "https://images.unsplash.com/photo-1583847268964-b28dc8f98059?q=80&w=1964&auto=format&fit=crop",
				URL:   "#",
			},
			{
				Store: "Travel Adventures",
				Image: "https://images.unsplash.com/photo-1469854523086-cc02fe5d8800?q=80&w=2021&auto=format&fit=crop",
				URL:   "#",
			},
		},
	}
}
