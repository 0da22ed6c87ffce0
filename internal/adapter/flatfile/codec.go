package flatfile

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"nutrilog/internal/domain"
)

// Flat-record formats, one comma-separated logical record per line:
//
//	users.txt       name,age,sex,height,weight
//	products.txt    name,unit,calories,proteins,minerals
//	meals.txt       name line, then product,quantity lines, then a blank line
//	daily_logs.txt  username,day,mealSeq,mealName,servings,product,quantity
//
// The daily-log decoder also accepts the legacy five-field form
// username,day,servings,product,quantity; such lines carry no grouping
// information, so each one is reconstructed as a single-item meal named
// "Loaded Meal". Lines with any other field count are skipped. Field
// values are written verbatim; delimiters inside names are not escaped.

// loadedMealName labels meals reconstructed from ungrouped legacy records.
const loadedMealName = "Loaded Meal"

// parseFloatOrDefault returns the parsed value, or def when s is not a
// valid number. Persisted numeric fields never fail a load.
func parseFloatOrDefault(s string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return def
	}
	return v
}

// parseIntOrDefault is parseFloatOrDefault for integer fields.
func parseIntOrDefault(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func encodeUsers(users map[string]domain.User) []byte {
	names := sortedKeys(users)
	var b strings.Builder
	for _, name := range names {
		u := users[name]
		fmt.Fprintf(&b, "%s,%d,%s,%s,%s\n",
			u.Name, u.Age, u.Sex, formatFloat(u.Height), formatFloat(u.Weight))
	}
	return []byte(b.String())
}

func decodeUsers(data []byte) map[string]domain.User {
	users := make(map[string]domain.User)
	for _, line := range lines(data) {
		parts := strings.Split(line, ",")
		if len(parts) != 5 {
			continue
		}
		u := domain.User{
			Name:   parts[0],
			Age:    parseIntOrDefault(parts[1], 0),
			Sex:    parts[2],
			Height: parseFloatOrDefault(parts[3], 0),
			Weight: parseFloatOrDefault(parts[4], 0),
		}
		users[u.Name] = u
	}
	return users
}

func encodeProducts(products map[string]domain.Product) []byte {
	names := sortedKeys(products)
	var b strings.Builder
	for _, name := range names {
		p := products[name]
		fmt.Fprintf(&b, "%s,%s,%s,%s,%s\n",
			p.Name, p.Unit, formatFloat(p.Calories), formatFloat(p.Proteins), formatFloat(p.Minerals))
	}
	return []byte(b.String())
}

func decodeProducts(data []byte) map[string]domain.Product {
	products := make(map[string]domain.Product)
	for _, line := range lines(data) {
		parts := strings.Split(line, ",")
		if len(parts) != 5 {
			continue
		}
		p := domain.Product{
			Name:     parts[0],
			Unit:     parts[1],
			Calories: parseFloatOrDefault(parts[2], 0),
			Proteins: parseFloatOrDefault(parts[3], 0),
			Minerals: parseFloatOrDefault(parts[4], 0),
		}
		products[p.Name] = p
	}
	return products
}

// encodeMeals writes each meal as a name line, item lines, and a blank
// terminator. The serving multiplier is not part of this format, so a
// reload always resets servings to 1.
func encodeMeals(meals []domain.Meal) []byte {
	var b strings.Builder
	for _, m := range meals {
		b.WriteString(m.Name)
		b.WriteByte('\n')
		for _, it := range m.Items {
			fmt.Fprintf(&b, "%s,%s\n", it.Product, formatFloat(it.Quantity))
		}
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

func decodeMeals(data []byte) []domain.Meal {
	var meals []domain.Meal
	raw := strings.Split(string(data), "\n")
	for i := 0; i < len(raw); i++ {
		name := raw[i]
		if name == "" {
			continue
		}
		meal := domain.Meal{Name: name, Servings: 1}
		for i++; i < len(raw); i++ {
			line := raw[i]
			if line == "" {
				break
			}
			parts := strings.Split(line, ",")
			if len(parts) != 2 {
				continue
			}
			meal.Items = append(meal.Items, domain.MealItem{
				Product:  parts[0],
				Quantity: parseFloatOrDefault(parts[1], 0),
			})
		}
		meals = append(meals, meal)
	}
	return meals
}

type logKey struct {
	username string
	day      string
}

func encodeLogs(logs map[logKey]*domain.DailyLog) []byte {
	keys := make([]logKey, 0, len(logs))
	for k := range logs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].username != keys[j].username {
			return keys[i].username < keys[j].username
		}
		return keys[i].day < keys[j].day
	})

	var b strings.Builder
	for _, k := range keys {
		l := logs[k]
		for seq, m := range l.Meals {
			for _, it := range m.Items {
				fmt.Fprintf(&b, "%s,%s,%d,%s,%s,%s,%s\n",
					l.Username, l.Day, seq, m.Name, formatFloat(m.Servings),
					it.Product, formatFloat(it.Quantity))
			}
		}
	}
	return []byte(b.String())
}

// decodeLogs reads both the grouped seven-field format and the legacy
// five-field format. An unparseable day field fails the whole load; the
// day is part of every log key and has no sensible default.
func decodeLogs(data []byte) (map[logKey]*domain.DailyLog, error) {
	logs := make(map[logKey]*domain.DailyLog)
	// meal positions per entry for regrouping the seven-field form
	grouped := make(map[logKey]map[int]int)

	for _, line := range lines(data) {
		parts := strings.Split(line, ",")
		if len(parts) != 5 && len(parts) != 7 {
			continue
		}

		username, day := parts[0], parts[1]
		if _, err := time.Parse(domain.DayFormat, day); err != nil {
			return nil, fmt.Errorf("daily log for %q: parse day %q: %w", username, day, err)
		}

		key := logKey{username: username, day: day}
		l, ok := logs[key]
		if !ok {
			l = &domain.DailyLog{Username: username, Day: day}
			logs[key] = l
			grouped[key] = make(map[int]int)
		}

		if len(parts) == 5 {
			// Legacy record: no grouping fields, one synthetic meal per line.
			l.Meals = append(l.Meals, domain.Meal{
				Name:     loadedMealName,
				Items:    []domain.MealItem{{Product: parts[3], Quantity: parseFloatOrDefault(parts[4], 0)}},
				Servings: parseFloatOrDefault(parts[2], 1),
			})
			continue
		}

		seq := parseIntOrDefault(parts[2], 0)
		item := domain.MealItem{Product: parts[5], Quantity: parseFloatOrDefault(parts[6], 0)}
		if idx, ok := grouped[key][seq]; ok {
			l.Meals[idx].Items = append(l.Meals[idx].Items, item)
			continue
		}
		grouped[key][seq] = len(l.Meals)
		l.Meals = append(l.Meals, domain.Meal{
			Name:     parts[3],
			Items:    []domain.MealItem{item},
			Servings: parseFloatOrDefault(parts[4], 1),
		})
	}
	return logs, nil
}

func lines(data []byte) []string {
	var out []string
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
