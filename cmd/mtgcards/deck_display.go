package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/z33kz33k/mtgcards/internal/deck"
)

// displayDeck prints a parsed deck summary to stdout.
func displayDeck(d *deck.Deck) {
	name := d.Name()
	if name == "" {
		name = "(unnamed)"
	}

	fmt.Printf("Deck: %s\n", name)
	fmt.Printf("Format: %s\n", d.Format())
	if src := d.Source(); src != "" {
		fmt.Printf("Source: %s\n", src)
	}

	color := d.Color()
	if color == "" {
		color = "colorless"
	}
	fmt.Printf("Colors: %s\n", color)
	fmt.Printf("Archetype: %s\n", d.Archetype())
	if theme := d.Theme(); theme != "" {
		fmt.Printf("Theme: %s\n", theme)
	}
	fmt.Println()

	if commander := d.Commander(); commander != nil {
		fmt.Printf("Commander: %s\n", commander.Name)
	}
	if companion := d.Companion(); companion != nil {
		fmt.Printf("Companion: %s\n", companion.Name)
	}

	fmt.Printf("Mainboard: %d cards", len(d.Mainboard()))
	if d.HasSideboard() {
		fmt.Printf(", Sideboard: %d cards", len(d.Sideboard()))
	}
	fmt.Println()

	fmt.Printf("Creatures: %d | Lands: %d | Instants: %d | Sorceries: %d\n",
		len(d.Creatures()), len(d.Lands()), len(d.Instants()), len(d.Sorceries()))
	fmt.Printf("Avg CMC: %.2f\n", d.AvgCMC())
	if price := d.Price(); price > 0 {
		fmt.Printf("Price: $%.2f\n", price)
	}
	fmt.Println()

	fmt.Println("Mana curve:")
	fmt.Print(formatManaCurve(d))
}

// formatManaCurve renders a simple ASCII bar per mana cost.
func formatManaCurve(d *deck.Deck) string {
	curve := d.ManaCurve()

	costs := make([]int, 0, len(curve))
	for cost := range curve {
		costs = append(costs, cost)
	}
	sort.Ints(costs)

	var b strings.Builder
	for _, cost := range costs {
		label := fmt.Sprintf("%d", cost)
		if cost >= deck.ManaCurveCap {
			label = fmt.Sprintf("%d+", deck.ManaCurveCap)
		}
		fmt.Fprintf(&b, "  %-3s %s (%d)\n", label, strings.Repeat("#", curve[cost]), curve[cost])
	}
	return b.String()
}

// displayPlaysets prints the decklist body grouped into playsets.
func displayPlaysets(d *deck.Deck) {
	if commander := d.Commander(); commander != nil {
		fmt.Println("Commander")
		fmt.Printf("%d %s\n", 1, commander.Name)
		fmt.Println()
	}

	fmt.Println("Deck")
	for _, ps := range deck.GroupPlaysets(d.Mainboard()) {
		fmt.Printf("%d %s\n", ps.Count, ps.Card.Name)
	}

	if d.HasSideboard() {
		fmt.Println()
		fmt.Println("Sideboard")
		for _, ps := range deck.GroupPlaysets(d.Sideboard()) {
			fmt.Printf("%d %s\n", ps.Count, ps.Card.Name)
		}
	}
}
