package util

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/kreumat/nilbel-hackhaton-NAYS/models/venue"
)

// categoryMap translates the raw venue_type into the dashboard's category
// tag and Turkish label.
var categoryMap = map[string]struct {
	Category string
	Label    string
}{
	"Library":    {"kutuphane", "Kütüphane"},
	"Cafe":       {"kafe", "Kafe"},
	"Restaurant": {"lokanta", "Lokanta"},
	"Museum":     {"muze", "Müze"},
}

// venueMetadata holds presentation details that are not part of data.json.
var venueMetadata = map[string]struct {
	Address     string
	Description string
	Image       string
}{
	"001": {
		Address:     "Görükle, Nilüfer/Bursa (Gençlik Merkezi)",
		Description: "Gençlerin yoğun olduğu Görükle'de, dinamik ve ortak çalışma kültürünü destekleyen bir kütüphanedir.",
		Image:       "images/gorukle-koza-kutuphane.jpeg",
	},
	"002": {
		Address:     "29 Ekim Mah. Nilüfer/Bursa",
		Description: "Modern ve samimi atmosferiyle mahalle sakinleri ve gençler için ekonomik bir buluşma noktası.",
		Image:       "images/nilbel-29-ekim-kafe.jpeg",
	},
	"003": {
		Address:     "Görükle Mah. Nilüfer/Bursa",
		Description: "Öğrenciler ve vatandaşlar için sağlıklı, lezzetli ve ekonomik yemek seçenekleri sunan sosyal bir projedir.",
		Image:       "images/gorukle-kent-lokantasi.jpeg",
	},
	"004": {
		Address:     "Misi (Gümüştepe) Mah. Nilüfer/Bursa",
		Description: "Türk edebiyatının hafızasını canlı tutan yaşayan bir müze.",
		Image:       "images/edebiyat-müzesi-ve-arsivi.jpeg",
	},
}

// ReadVenuesFromJSON loads the venue records from JSON on disk and resolves
// the category mapping and static metadata for each.
func ReadVenuesFromJSON(filePath string) ([]venue.Venue, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}

	var venues []venue.Venue
	if err := json.Unmarshal(data, &venues); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venues: %w", err)
	}

	for i := range venues {
		applyMetadata(&venues[i])
	}
	return venues, nil
}

func applyMetadata(v *venue.Venue) {
	if cat, ok := categoryMap[v.VenueType]; ok {
		v.Category = cat.Category
		v.CategoryLabel = cat.Label
	} else {
		v.Category = "other"
		v.CategoryLabel = "Diğer"
	}

	if meta, ok := venueMetadata[v.VenueID]; ok {
		v.VenueAddress = meta.Address
		v.Description = meta.Description
		v.Image = meta.Image
	}
}

// PrintVenuesPartially prints key fields of the loaded venue set.
func PrintVenuesPartially(venues []venue.Venue) {
	fmt.Printf("Venues loaded: %d\n", len(venues))
	for _, v := range venues {
		fmt.Printf("  %s: %s (%s), capacity=%d, logs=%d\n",
			v.VenueID, v.VenueName, v.VenueType, v.MaxCapacity, len(v.OccupancyLogs))
	}
}
