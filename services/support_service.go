package services

import (
	"plateful/entity"
	"plateful/repository"
)

type SupportService struct {
	Repo *repository.SupportRepository
}

func NewSupportService(repo *repository.SupportRepository) *SupportService {
	return &SupportService{Repo: repo}
}

type TicketIn struct {
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
	OrderID *uint  `json:"orderId"`
}

func (s *SupportService) Open(userID uint, in *TicketIn) (*entity.SupportTicket, error) {
	t := &entity.SupportTicket{
		UserID:  userID,
		Subject: in.Subject,
		Body:    in.Body,
		OrderID: in.OrderID,
		Status:  entity.TicketOpen,
	}
	if err := s.Repo.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *SupportService) ListForUser(userID uint, limit int) ([]entity.SupportTicket, error) {
	return s.Repo.ListForUser(userID, limit)
}

func (s *SupportService) ListAll(status string, limit, offset int) ([]entity.SupportTicket, error) {
	return s.Repo.ListAll(status, limit, offset)
}

func (s *SupportService) Close(id uint, reply string) error {
	affected, err := s.Repo.Close(id, reply)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrConflict
	}
	return nil
}
