package service

import (
	"context"

	"github.com/forumfuncionario/portal-service/internal/dto"
	"github.com/forumfuncionario/portal-service/internal/repository"
)

type EmployeeService interface {
	GetBirthdaysCurrentMonth(ctx context.Context) (resp []dto.EmployeeResponse, err error)
}

type EmployeeServiceImpl struct {
	repo repository.EmployeeRepository
}

func CreateNewEmployeeService(repo repository.EmployeeRepository) EmployeeService {
	return &EmployeeServiceImpl{repo: repo}
}

func (s *EmployeeServiceImpl) GetBirthdaysCurrentMonth(ctx context.Context) (resp []dto.EmployeeResponse, err error) {
	employees, err := s.repo.GetEmployeesByCurrentMonth(ctx)
	if err != nil {
		return
	}

	for _, employee := range employees {
		resp = append(resp, dto.EmployeeResponse{
			Name:      employee.Name,
			BirthDate: employee.BirthDate.Format("2006-01-02"),
			Branch:    employee.Branch,
		})
	}

	return
}
