package board

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/villagegame/internal/model"
	"github.com/mcoot/villagegame/internal/services/scoring"
	"github.com/mcoot/villagegame/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
	grid    *model.Grid
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	logger := testutil.NopLogger()
	s.service = New(scoring.New(logger), logger)

	grid, err := s.service.CreateBoard(3, 3)
	s.Require().NoError(err)
	s.grid = grid
}

// CreateBoard tests

func (s *ServiceSuite) TestCreateBoardSucceeds() {
	s.Equal(3, s.grid.Rows())
	s.Equal(3, s.grid.Columns())
	s.Equal(9, s.grid.CountOfType(model.CellNone))
}

func (s *ServiceSuite) TestCreateBoardInvalidColumns() {
	_, err := s.service.CreateBoard(3, 0)
	s.ErrorIs(err, model.ErrInvalidColumns)
}

// PlaceType tests

func (s *ServiceSuite) TestPlaceTypeSucceeds() {
	placement, err := s.service.PlaceType(s.grid, model.Position{Row: 1, Col: 1}, model.CellHouse)
	s.Require().NoError(err)

	s.Equal(model.CellHouse, s.grid.At(1, 1).Type)
	s.Same(s.grid.At(1, 1), placement.Cell)
	s.Equal(model.CellNone, placement.Previous)
	s.Equal(0, placement.Delta)
}

func (s *ServiceSuite) TestPlaceTypeReportsDelta() {
	_, err := s.service.PlaceType(s.grid, model.Position{Row: 1, Col: 1}, model.CellHouse)
	s.Require().NoError(err)

	placement, err := s.service.PlaceType(s.grid, model.Position{Row: 0, Col: 0}, model.CellFireside)
	s.Require().NoError(err)
	s.Equal(2, placement.Delta)

	// Graveyard next to both: house -5, fireside -5, graveyard itself 0
	placement, err = s.service.PlaceType(s.grid, model.Position{Row: 0, Col: 1}, model.CellGraveyard)
	s.Require().NoError(err)
	s.Equal(-10, placement.Delta)
}

func (s *ServiceSuite) TestPlaceTypeOverwrites() {
	_, _ = s.service.PlaceType(s.grid, model.Position{Row: 2, Col: 2}, model.CellPark)

	placement, err := s.service.PlaceType(s.grid, model.Position{Row: 2, Col: 2}, model.CellInn)
	s.Require().NoError(err)

	s.Equal(model.CellPark, placement.Previous)
	s.Equal(model.CellInn, s.grid.At(2, 2).Type)
}

func (s *ServiceSuite) TestPlaceTypeAcceptsNone() {
	_, _ = s.service.PlaceType(s.grid, model.Position{Row: 0, Col: 0}, model.CellHouse)

	_, err := s.service.PlaceType(s.grid, model.Position{Row: 0, Col: 0}, model.CellNone)
	s.Require().NoError(err)
	s.Equal(model.CellNone, s.grid.At(0, 0).Type)
}

func (s *ServiceSuite) TestPlaceTypeInvalidPosition() {
	_, err := s.service.PlaceType(s.grid, model.Position{Row: 3, Col: 0}, model.CellHouse)
	s.ErrorIs(err, model.ErrInvalidPosition)

	_, err = s.service.PlaceType(s.grid, model.Position{Row: 0, Col: -1}, model.CellHouse)
	s.ErrorIs(err, model.ErrInvalidPosition)
}

func (s *ServiceSuite) TestPlaceTypeUnknownType() {
	_, err := s.service.PlaceType(s.grid, model.Position{Row: 0, Col: 0}, model.CellType(99))
	s.ErrorIs(err, model.ErrUnknownCellType)
	s.Equal(model.CellNone, s.grid.At(0, 0).Type)
}

// NormalizeRoads / EvaluateBoard / Reset tests

func (s *ServiceSuite) TestNormalizeRoads() {
	for col := 0; col < 3; col++ {
		_, err := s.service.PlaceType(s.grid, model.Position{Row: 1, Col: col}, model.CellRoadHorizontal)
		s.Require().NoError(err)
	}

	s.Equal(3, s.service.NormalizeRoads(s.grid))
	s.Equal(3, s.grid.CountOfType(model.CellRoadCross))
}

func (s *ServiceSuite) TestResetThenEvaluateIsZero() {
	_, _ = s.service.PlaceType(s.grid, model.Position{Row: 0, Col: 0}, model.CellGraveyard)
	_, _ = s.service.PlaceType(s.grid, model.Position{Row: 2, Col: 2}, model.CellGraveyard)
	s.Equal(20, s.service.EvaluateBoard(s.grid).TotalScore)

	s.service.Reset(s.grid)

	s.Equal(0, s.service.EvaluateBoard(s.grid).TotalScore)
	s.Equal(9, s.grid.CountOfType(model.CellNone))
}
