package service

import (
	"github.com/aidar/stellar-team/internal/domain"
	"github.com/aidar/stellar-team/internal/repository"
)

// MemberCard is one member as shown on the team page
type MemberCard struct {
	Name        string
	Institution string
	Country     string
	Link        string
	Photo       string
}

// TeamPage is the view model of the team page
type TeamPage struct {
	Title   string
	Members []MemberCard
}

// MemberService exposes the member directory to the transport layers
type MemberService struct {
	memberRepo repository.MemberRepository
}

// NewMemberService creates a new MemberService
func NewMemberService(memberRepo repository.MemberRepository) *MemberService {
	return &MemberService{
		memberRepo: memberRepo,
	}
}

// List returns all members in display order
func (s *MemberService) List() []domain.Member {
	return s.memberRepo.All()
}

// Count returns the number of members
func (s *MemberService) Count() int {
	return s.memberRepo.Len()
}

// Get returns the member at the given display position
func (s *MemberService) Get(index int) (*domain.Member, error) {
	if index < 0 || index >= s.memberRepo.Len() {
		return nil, domain.ErrMemberNotFound
	}

	for i, m := range s.memberRepo.Members() {
		if i == index {
			return &m, nil
		}
	}

	return nil, domain.ErrMemberNotFound
}

// TeamPage builds the team page view in display order
func (s *MemberService) TeamPage(title string) TeamPage {
	page := TeamPage{
		Title:   title,
		Members: make([]MemberCard, 0, s.memberRepo.Len()),
	}

	for _, m := range s.memberRepo.Members() {
		page.Members = append(page.Members, MemberCard{
			Name:        m.Name,
			Institution: m.Institution(),
			Country:     m.Country(),
			Link:        m.Link,
			Photo:       m.Photo,
		})
	}

	return page
}
