package service

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"medsupply/internal/domain"
	"medsupply/internal/repository"
)

// SalesService журнал завершённых продаж и производные представления
type SalesService struct {
	sales     repository.SalesRepository
	medicines repository.MedicineRepository
	log       *zap.Logger
}

func NewSalesService(sales repository.SalesRepository, medicines repository.MedicineRepository, log *zap.Logger) *SalesService {
	return &SalesService{sales: sales, medicines: medicines, log: log}
}

// AddSale дописывает продажу в журнал; ID и время назначаются хранилищем
func (s *SalesService) AddSale(ctx context.Context, sale *domain.Sale) error {
	if sale == nil {
		return fmt.Errorf("%w: sale cannot be nil", domain.ErrInvalidArgument)
	}
	return s.sales.Append(ctx, sale)
}

// History продажи в хронологическом порядке
func (s *SalesService) History(ctx context.Context) ([]domain.Sale, error) {
	return s.sales.List(ctx)
}

// RecentHistory продажи, начиная с последней
func (s *SalesService) RecentHistory(ctx context.Context) ([]domain.Sale, error) {
	list, err := s.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
		list[i], list[j] = list[j], list[i]
	}
	return list, nil
}

// Statistics агрегаты по идентификатору лекарства, отсортированные по идентификатору.
// Стоимость считается по текущей цене каталога, поэтому изменение цены меняет и историю;
// для удалённых из каталога лекарств берётся цена на момент продажи.
func (s *SalesService) Statistics(ctx context.Context) ([]domain.SalesStat, error) {
	list, err := s.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.SalesStat)
	prices := make(map[string]float64)
	for _, sale := range list {
		for _, l := range sale.Lines {
			price, ok := prices[l.MedicineID]
			if !ok {
				price = l.UnitPrice
				if m, err := s.medicines.GetByID(ctx, l.MedicineID); err == nil {
					price = m.Price
				}
				prices[l.MedicineID] = price
			}
			st, ok := byID[l.MedicineID]
			if !ok {
				st = &domain.SalesStat{MedicineID: l.MedicineID, Name: l.Name}
				byID[l.MedicineID] = st
			}
			st.QuantitySold += l.Quantity
			st.ValueSold += price * float64(l.Quantity)
		}
	}
	out := make([]domain.SalesStat, 0, len(byID))
	for _, st := range byID {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MedicineID < out[j].MedicineID })
	return out, nil
}

// RankByQuantity по убыванию проданного количества, при равенстве по идентификатору
func (s *SalesService) RankByQuantity(ctx context.Context) ([]domain.SalesStat, error) {
	stats, err := s.Statistics(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].QuantitySold > stats[j].QuantitySold
	})
	return stats, nil
}

// RankByValue по убыванию выручки, при равенстве по идентификатору
func (s *SalesService) RankByValue(ctx context.Context) ([]domain.SalesStat, error) {
	stats, err := s.Statistics(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].ValueSold > stats[j].ValueSold
	})
	return stats, nil
}
