package usecase

import (
	"context"
	"errors"
	"testing"

	"proposal_catalog/internal/domain/entities"
	mock_interfaces "proposal_catalog/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validClientInput() ClientInput {
	return ClientInput{Name: "Padaria Central", Email: "contato@padaria.com.br", Phone: "11 99999-0000", Address: "Rua A, 10", CityID: "1"}
}

func TestClientUseCase_Create(t *testing.T) {
	invalid := []struct {
		name   string
		mutate func(in *ClientInput)
		want   error
	}{
		{name: "blank name", mutate: func(in *ClientInput) { in.Name = " " }, want: ErrInvalidClientName},
		{name: "bad email", mutate: func(in *ClientInput) { in.Email = "not-an-email" }, want: ErrInvalidClientEmail},
		{name: "blank email", mutate: func(in *ClientInput) { in.Email = "" }, want: ErrInvalidClientEmail},
		{name: "blank phone", mutate: func(in *ClientInput) { in.Phone = "" }, want: ErrInvalidClientPhone},
		{name: "no city selected", mutate: func(in *ClientInput) { in.CityID = "" }, want: ErrCityRequired},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			in := validClientInput()
			tc.mutate(&in)
			_, err := NewClientUseCase(nil, nil).Create(context.Background(), in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("city not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		cities := mock_interfaces.NewMockICityRepository(ctrl)
		cities.EXPECT().GetByID(gomock.Any(), "1").Return(entities.City{}, nil)

		_, err := NewClientUseCase(repo, cities).Create(context.Background(), validClientInput())
		if !errors.Is(err, ErrCityNotFound) {
			t.Fatalf("expected ErrCityNotFound, got %v", err)
		}
	})

	t.Run("success links city", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		cities := mock_interfaces.NewMockICityRepository(ctrl)
		cities.EXPECT().GetByID(gomock.Any(), "1").Return(entities.City{ID: "1", Name: "São Paulo", State: "SP"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.ID == "" || !c.InCity("1") || c.Email != "contato@padaria.com.br" {
					t.Fatalf("unexpected client: %+v", c)
				}
				return c, nil
			},
		)

		if _, err := NewClientUseCase(repo, cities).Create(context.Background(), validClientInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestClientUseCase_List(t *testing.T) {
	t.Run("all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		repo.EXPECT().List(gomock.Any()).Return([]entities.Client{{ID: "c1"}}, nil)

		got, err := NewClientUseCase(repo, nil).List(context.Background(), nil)
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected result %v %v", got, err)
		}
	})

	t.Run("by city", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		repo.EXPECT().ListByCityID(gomock.Any(), "1").Return([]entities.Client{}, nil)

		city := " 1 "
		if _, err := NewClientUseCase(repo, nil).List(context.Background(), &city); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("blank city", func(t *testing.T) {
		city := ""
		_, err := NewClientUseCase(nil, nil).List(context.Background(), &city)
		if !errors.Is(err, ErrInvalidCityID) {
			t.Fatalf("expected ErrInvalidCityID, got %v", err)
		}
	})
}
