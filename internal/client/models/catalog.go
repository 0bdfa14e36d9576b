package models

import "time"

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

type Size struct {
	ID   string `json:"id"`
	Size string `json:"size"`
}

type ProductImage struct {
	ID       string `json:"id"`
	Image    string `json:"image,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// URL prefers the external image link over the uploaded file.
func (i ProductImage) URL() string {
	if i.ImageURL != "" {
		return i.ImageURL
	}
	return i.Image
}

type Product struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Price       int64          `json:"price"`
	Category    *Category      `json:"category,omitempty"`
	Sizes       []Size         `json:"size"`
	Images      []ProductImage `json:"images"`
}

// PrimaryImage returns the first image URL or "".
func (p Product) PrimaryImage() string {
	for _, img := range p.Images {
		if u := img.URL(); u != "" {
			return u
		}
	}
	return ""
}

// SizeByLabel finds the size variant with the given label.
func (p Product) SizeByLabel(label string) (Size, bool) {
	for _, s := range p.Sizes {
		if s.Size == label {
			return s, true
		}
	}
	return Size{}, false
}

// ProductInput is the admin create/update payload.
type ProductInput struct {
	Title       string   `json:"title" validate:"required,max=50"`
	Description string   `json:"description"`
	Price       int64    `json:"price" validate:"gte=0"`
	CategoryID  string   `json:"category_id,omitempty"`
	SizeIDs     []string `json:"size_ids,omitempty"`
	ImageURLs   []string `json:"image_urls,omitempty" validate:"dive,url"`
}

// StaffMember is a team member shown on the about page.
type StaffMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"image,omitempty"`
	Position string `json:"position"`
}

type ContactMessage struct {
	ID        string     `json:"id,omitempty"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Message   string     `json:"message"`
	IsRead    bool       `json:"is_read,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}
