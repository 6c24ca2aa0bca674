package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/catchpool/internal/bootstrap"
	"github.com/osse101/catchpool/internal/config"
	"github.com/osse101/catchpool/internal/domain"
	"github.com/osse101/catchpool/internal/location"
)

// debug prints the odds table for one fishing context, built from the content
// files on disk. The place is expanded unless the context file lists locations.
func main() {
	_ = godotenv.Load()
	if os.Getenv("API_KEY") == "" {
		_ = os.Setenv("API_KEY", "debug")
	}

	placeName := flag.String("place", "Town", "place name")
	placeKind := flag.String("kind", "", "place kind: depth, farm, island or other")
	depth := flag.Int("depth", 0, "floor for depth places")
	poolName := flag.String("pool", string(domain.PoolFish), "pool: fish, trash or treasure")
	season := flag.String("season", "spring", "season")
	weather := flag.String("weather", "sunny", "sunny or rainy")
	water := flag.String("water", "river", "water type")
	timeOfDay := flag.Int("time", 1200, "time of day, 600 to 2600")
	level := flag.Int("level", 10, "fishing level")
	contextPath := flag.String("context", "", "JSON file with a fishing context; overrides the flags it sets")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg.DataSource = config.DataSourceFile

	pool, ok := domain.ParsePool(*poolName)
	if !ok {
		log.Fatalf("Unknown pool %q", *poolName)
	}

	ctx := context.Background()
	stack, err := bootstrap.BuildContent(ctx, cfg, nil)
	if err != nil {
		log.Fatalf("Failed to build content: %v", err)
	}
	if _, err := stack.Service.Reload(ctx); err != nil {
		log.Fatalf("Failed to load content: %v", err)
	}

	place, err := location.Spec{Kind: *placeKind, Name: *placeName, Depth: *depth}.Place()
	if err != nil {
		log.Fatalf("Invalid place: %v", err)
	}

	fctx, err := buildContext(*season, *weather, *water, *timeOfDay, *level)
	if err != nil {
		log.Fatalf("Invalid context: %v", err)
	}
	if *contextPath != "" {
		data, err := os.ReadFile(*contextPath)
		if err != nil {
			log.Fatalf("Failed to read context: %v", err)
		}
		if err := json.Unmarshal(data, &fctx); err != nil {
			log.Fatalf("Invalid context file: %v", err)
		}
	}
	if len(fctx.Locations) == 0 {
		fctx.Locations = stack.Expander.Expand(place, fctx.PlayerTile)
	}

	odds := stack.Service.Odds(&fctx, pool)

	title := cases.Title(language.English)
	fmt.Printf("%s pool at %s (%s)\n", title.String(string(pool)), place.Name(), strings.Join(fctx.Locations, ", "))
	if len(odds) == 0 {
		fmt.Println("Nothing can be caught here.")
		return
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tWEIGHT\tCHANCE")
	for _, o := range odds {
		name := o.Entry.Key.ID()
		if data, ok := stack.Lookup.Resolve(o.Entry.Key.String()); ok && data.Name != "" {
			name = data.Name
		}
		fmt.Fprintf(tw, "%s\t%s\t%.3f\t%5.1f%%\n", o.Entry.Key, title.String(name), o.Weight, o.Probability*100)
	}
	_ = tw.Flush()
}

func buildContext(season, weather, water string, timeOfDay, level int) (domain.FishingContext, error) {
	fctx := domain.FishingContext{
		Time:         timeOfDay,
		FishingLevel: level,
		BobberDepth:  domain.DefaultBobberDepth,
	}

	// Flag sets parse the same names the API accepts.
	if err := fctx.Season.UnmarshalJSON(quote(season)); err != nil {
		return domain.FishingContext{}, err
	}
	if err := fctx.Weather.UnmarshalJSON(quote(weather)); err != nil {
		return domain.FishingContext{}, err
	}
	if err := fctx.WaterType.UnmarshalJSON(quote(water)); err != nil {
		return domain.FishingContext{}, err
	}
	return fctx, nil
}

func quote(s string) []byte {
	return []byte(strconv.Quote(s))
}
