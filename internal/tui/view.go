package tui

import (
	"fmt"
	"strconv"
	"strings"

	"pet-adoption/internal/catalog"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.header())
	b.WriteString("\n\n")

	switch md := m.modal.(type) {
	case noModal:
		if m.section == sectionHome {
			b.WriteString(m.homeView())
		} else {
			b.WriteString(m.petsView())
		}
	default:
		b.WriteString(m.modalView(md))
	}

	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m Model) header() string {
	tabs := []string{"Home", "Pets"}
	rendered := make([]string, len(tabs))
	for i, t := range tabs {
		if section(i) == m.section {
			rendered[i] = activeTabStyle.Render(t)
		} else {
			rendered[i] = tabStyle.Render(t)
		}
	}
	title := titleStyle.Render("Pet Adoption")
	if m.admin {
		title += " " + mutedStyle.Render("[admin]")
	}
	return title + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) homeView() string {
	home := m.backend.Home()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Meet our pets"))
	b.WriteString("\n")
	b.WriteString(m.petList(home.Pets))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Happy adopters"))
	b.WriteString("\n")
	if len(home.Reviews) == 0 {
		b.WriteString(mutedStyle.Render("No reviews yet.") + "\n")
	}
	for _, r := range home.Reviews {
		fmt.Fprintf(&b, "%s %s on %s\n  %s\n",
			likedStyle.Render(stars(r.Rating)),
			r.Name,
			r.PetName,
			mutedStyle.Render(r.Review),
		)
	}
	return b.String()
}

func (m Model) petsView() string {
	pg := m.currentPage()

	var b strings.Builder
	b.WriteString(m.search.View())
	b.WriteString("\n\n")
	b.WriteString(m.petList(pg.Items))
	b.WriteString("\n")
	b.WriteString(pager(pg))
	return b.String()
}

func (m Model) petList(pets []catalog.Pet) string {
	if m.loading && len(pets) == 0 {
		return mutedStyle.Render("Loading...") + "\n"
	}
	if len(pets) == 0 {
		return mutedStyle.Render("No pets found.") + "\n"
	}

	var b strings.Builder
	for i, p := range pets {
		line := card(p)
		if i == m.cursor {
			b.WriteString(selectedItemStyle.Render("> " + line))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// card: una línea por mascota con sus primeros traits.
func card(p catalog.Pet) string {
	parts := []string{p.Name}
	for _, s := range []string{p.Breed, p.Sex, ageLabel(p.Age), p.Location} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	line := strings.Join(parts, " · ")
	if p.IsLiked {
		line += " " + likedStyle.Render("♥")
	}
	if traits := catalog.TopTraits(p.Traits, catalog.CardTraits); len(traits) > 0 {
		tags := make([]string, len(traits))
		for i, t := range traits {
			tags[i] = traitStyle.Render(t)
		}
		line += "  " + strings.Join(tags, "")
	}
	return line
}

func pager(pg catalog.Page[catalog.Pet]) string {
	if pg.TotalPages == 0 {
		return ""
	}
	var btns []string
	if pg.Page > 1 {
		btns = append(btns, pageStyle.Render("‹"))
	}
	for _, n := range catalog.PageWindow(pg.Page, pg.TotalPages, catalog.PageWindowSize) {
		if n == pg.Page {
			btns = append(btns, currentPageStyle.Render(strconv.Itoa(n)))
		} else {
			btns = append(btns, pageStyle.Render(strconv.Itoa(n)))
		}
	}
	if pg.Page < pg.TotalPages {
		btns = append(btns, pageStyle.Render("›"))
	}
	summary := mutedStyle.Render(fmt.Sprintf("page %d of %d · %d pets", pg.Page, pg.TotalPages, pg.Total))
	return lipgloss.JoinHorizontal(lipgloss.Top, btns...) + "\n" + summary + "\n"
}

func (m Model) modalView(md modal) string {
	switch md := md.(type) {
	case viewModal:
		return modalStyle.Render(detail(md.pet, m.admin))
	case adoptModal:
		return modalStyle.Render(titleStyle.Render("Adopt "+md.pet.Name) + "\n" + md.form.view())
	case reviewModal:
		return modalStyle.Render(titleStyle.Render("Leave a review") + "\n" + md.form.view())
	case petFormModal:
		title := "New pet"
		if md.mode == updatePet {
			title = "Edit " + md.pet.Name
		}
		return modalStyle.Render(titleStyle.Render(title) + "\n" + md.form.view())
	case confirmDeleteModal:
		return dangerModalStyle.Render(fmt.Sprintf("Delete %s? This cannot be undone.\n\n[y] delete  [n] cancel", md.pet.Name))
	case thankYouModal:
		return modalStyle.Render(successStyle.Render("Thank you!") + "\n\n" +
			fmt.Sprintf("Your request to adopt %s was received. We will contact you soon.", md.petName))
	}
	return ""
}

func detail(p catalog.Pet, admin bool) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Name))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s · %s · %s · %s\n", p.Breed, p.Sex, ageLabel(p.Age), p.Location)
	if p.Description != "" {
		b.WriteString("\n" + p.Description + "\n")
	}
	if traits := catalog.SplitTraits(p.Traits); len(traits) > 0 {
		b.WriteString("\n")
		for _, t := range traits {
			b.WriteString(traitStyle.Render(t))
		}
		b.WriteString("\n")
	}
	if p.Image != "" {
		b.WriteString("\n" + mutedStyle.Render(p.Image) + "\n")
	}
	help := "[a] adopt  [esc] close"
	if admin {
		help = "[a] adopt  [e] edit  [d] delete  [esc] close"
	}
	b.WriteString("\n" + mutedStyle.Render(help))
	return b.String()
}

func (m Model) footer() string {
	var lines []string
	if m.err != "" {
		lines = append(lines, errorStyle.Render(m.err))
	} else if m.status != "" {
		lines = append(lines, successStyle.Render(m.status))
	}

	help := "tab section · ↑/↓ move · enter view · a adopt · f like · r review · / search · ←/→ page · q quit"
	if m.admin {
		help += " · n new · e edit · d delete"
	}
	if _, open := m.modal.(noModal); !open {
		help = "tab next field · enter submit on last field · ctrl+s submit · esc close"
	}
	lines = append(lines, mutedStyle.Render(help))
	return strings.Join(lines, "\n")
}

func ageLabel(age int) string {
	if age == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", age)
}

func stars(n int) string {
	n = min(max(n, 0), 5)
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}
