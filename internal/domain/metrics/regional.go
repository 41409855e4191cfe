package metrics

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/groundnut-admin/internal/domain/entity"
)

// RegionStat agregados de una región (ciudad).
type RegionStat struct {
	Region    string
	Revenue   decimal.Decimal
	Orders    int
	Companies int
	GrowthPct int
}

// RegionalPerformance agrupa empresas y productos por la ciudad de la empresa.
// Toda ciudad conocida aparece aunque no tenga actividad (valores en cero).
//
// El crecimiento por región es el desvío del ingreso regional respecto a la
// media, desplazado por el crecimiento global: una heurística decorativa del
// dashboard original, sin significado de negocio. Se conserva tal cual.
func RegionalPerformance(cities []entity.City, companies []entity.Company, products []entity.Product, overallGrowth int) []RegionStat {
	type acc struct {
		revenue   decimal.Decimal
		orders    int
		companies int
	}
	regions := make(map[string]*acc)

	for _, city := range cities {
		regions[city.Name] = &acc{revenue: decimal.Zero}
	}

	companyRegion := make(map[int64]string, len(companies))
	for _, co := range companies {
		name := co.LocationName
		if name == "" {
			name = "Unknown"
		}
		if _, ok := regions[name]; !ok {
			regions[name] = &acc{revenue: decimal.Zero}
		}
		regions[name].companies++
		companyRegion[co.ID] = name
	}

	for _, p := range products {
		name, ok := companyRegion[p.CompanyID]
		if !ok {
			continue
		}
		r := regions[name]
		r.revenue = r.revenue.Add(p.FinalPrice)
		r.orders++
	}

	total := decimal.Zero
	for _, r := range regions {
		total = total.Add(r.revenue)
	}
	avg := decimal.Zero
	if len(regions) > 0 {
		avg = total.Div(decimal.NewFromInt(int64(len(regions))))
	}

	out := make([]RegionStat, 0, len(regions))
	for name, r := range regions {
		growth := overallGrowth
		if avg.IsPositive() {
			deviation, _ := r.revenue.Sub(avg).Div(avg).Mul(decimal.NewFromInt(100)).Float64()
			growth = int(math.Round(deviation)) + overallGrowth
		}
		out = append(out, RegionStat{
			Region:    name,
			Revenue:   r.revenue,
			Orders:    r.orders,
			Companies: r.companies,
			GrowthPct: growth,
		})
	}

	// Orden estable: por fecha de creación de la ciudad (las desconocidas al final, por nombre).
	cityCreated := make(map[string]int64, len(cities))
	for _, c := range cities {
		cityCreated[c.Name] = c.CreatedAt.UnixNano()
	}
	sort.SliceStable(out, func(i, j int) bool {
		ti, iKnown := cityCreated[out[i].Region]
		tj, jKnown := cityCreated[out[j].Region]
		if iKnown && jKnown {
			if ti != tj {
				return ti < tj
			}
			return out[i].Region < out[j].Region
		}
		if iKnown != jKnown {
			return iKnown
		}
		return out[i].Region < out[j].Region
	})
	return out
}
