package content

import (
	"fmt"

	contentRepo "akshara/database/repository/content"
	staffRepo "akshara/database/repository/staff"
	"akshara/models"
)

// ContentService serves everything the site renders: durable records from
// MongoDB and the fixed in-process fixtures.
type ContentService interface {
	Founders() ([]models.Founder, error)
	StaffOptions() ([]models.StaffOption, error)
	Programs() ([]models.Program, error)
	Events() ([]models.Event, error)
	BlogPosts() ([]models.BlogPost, error)
	Testimonials() []models.Testimonial
	Gallery() []string
	Stats() []models.Stat
	Details() models.OrgDetails
	LegalDoc(name string) (string, error)
}

// DefaultContentService implements ContentService.
type DefaultContentService struct {
	StaffRepo   staffRepo.StaffRepository
	ContentRepo contentRepo.ContentRepository
}

func (s *DefaultContentService) Founders() ([]models.Founder, error) {
	return s.StaffRepo.GetAll()
}

// StaffOptions returns the booking widget's staff selector entries: an
// explicit "no preference" option followed by every founder.
func (s *DefaultContentService) StaffOptions() ([]models.StaffOption, error) {
	founders, err := s.StaffRepo.GetAll()
	if err != nil {
		return nil, err
	}
	options := make([]models.StaffOption, 0, len(founders)+1)
	options = append(options, models.StaffOption{ID: "", Name: "Any Staff Member"})
	for _, f := range founders {
		options = append(options, models.StaffOption{ID: f.ID, Name: f.Name})
	}
	return options, nil
}

func (s *DefaultContentService) Programs() ([]models.Program, error) {
	return s.ContentRepo.GetPrograms()
}

func (s *DefaultContentService) Events() ([]models.Event, error) {
	return s.ContentRepo.GetEvents()
}

func (s *DefaultContentService) BlogPosts() ([]models.BlogPost, error) {
	return s.ContentRepo.GetBlogPosts()
}

func (s *DefaultContentService) Testimonials() []models.Testimonial {
	return siteTestimonials
}

func (s *DefaultContentService) Gallery() []string {
	return galleryImages
}

func (s *DefaultContentService) Stats() []models.Stat {
	return siteStats
}

func (s *DefaultContentService) Details() models.OrgDetails {
	return orgDetails
}

func (s *DefaultContentService) LegalDoc(name string) (string, error) {
	doc, ok := legalDocs[name]
	if !ok {
		return "", fmt.Errorf("unknown legal document %q", name)
	}
	return doc, nil
}
