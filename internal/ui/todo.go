package ui

import (
	"fmt"
	"log"

	"TaskApp/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// TodoView is the to-do tab: an entry to add items, the list and a footer
// with counts.
type TodoView struct {
	list    *state.TodoList
	entry   *widget.Entry
	addBtn  *widget.Button
	items   *widget.List
	empty   *widget.Label
	footer  *widget.Label
	content fyne.CanvasObject
}

func NewTodoView(l *state.TodoList) *TodoView {
	v := &TodoView{list: l}

	v.entry = widget.NewEntry()
	v.entry.SetPlaceHolder("What needs doing?")
	v.entry.OnSubmitted = func(string) { v.Add() }
	v.addBtn = widget.NewButtonWithIcon("Add", theme.ContentAddIcon(), v.Add)

	v.items = widget.NewList(
		l.Len,
		func() fyne.CanvasObject { return newTodoRow() },
		func(id widget.ListItemID, o fyne.CanvasObject) {
			item, ok := l.At(id)
			if !ok {
				return
			}
			o.(*todoRow).bind(item, id, v)
		},
	)

	v.empty = widget.NewLabelWithStyle("No to-dos yet", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	v.footer = widget.NewLabel("")

	l.OnChange = v.refresh

	input := container.NewBorder(nil, nil, nil, v.addBtn, v.entry)
	v.content = container.NewBorder(input, v.footer, nil, nil, container.NewStack(v.items, v.empty))
	v.refresh()
	return v
}

func (v *TodoView) Content() fyne.CanvasObject { return v.content }

// Add adds the entry text as a new item and clears the entry.
func (v *TodoView) Add() {
	if _, ok := v.list.Add(v.entry.Text); !ok {
		return
	}
	v.entry.SetText("")
}

func (v *TodoView) toggle(id int) {
	v.list.Toggle(id)
}

// setDone stores the checkbox state of a row.
func (v *TodoView) setDone(item state.TodoItem, done bool) {
	item.Done = done
	if !v.list.Update(item) {
		log.Printf("[TODO] Item #%d no longer exists", item.ID)
	}
}

func (v *TodoView) remove(pos int) {
	if _, err := v.list.Remove(pos); err != nil {
		log.Printf("[TODO] %v", err)
	}
}

func (v *TodoView) refresh() {
	v.items.Refresh()
	if v.list.Len() == 0 {
		v.empty.Show()
	} else {
		v.empty.Hide()
	}
	v.footer.SetText(fmt.Sprintf("%d completed · %d remaining", v.list.CompletedCount(), v.list.RemainingCount()))
}

type todoRow struct {
	widget.BaseWidget
	check *widget.Check
	title *widget.Label
	del   *widget.Button
	onTap func()
}

var _ fyne.Tappable = (*todoRow)(nil)

func newTodoRow() *todoRow {
	r := &todoRow{
		check: widget.NewCheck("", nil),
		title: widget.NewLabel(""),
		del:   widget.NewButtonWithIcon("", theme.DeleteIcon(), nil),
	}
	r.del.Importance = widget.LowImportance
	r.ExtendBaseWidget(r)
	return r
}

func (r *todoRow) bind(item state.TodoItem, pos int, v *TodoView) {
	// SetChecked fires OnChanged, so detach before syncing
	r.check.OnChanged = nil
	r.check.SetChecked(item.Done)
	r.check.OnChanged = func(done bool) { v.setDone(item, done) }
	r.onTap = func() { v.toggle(item.ID) }

	r.title.SetText(item.Title)
	if item.Done {
		r.title.Importance = widget.LowImportance
	} else {
		r.title.Importance = widget.MediumImportance
	}
	r.title.Refresh()

	r.del.OnTapped = func() { v.remove(pos) }
}

// Tapped toggles the item when the title is tapped.
func (r *todoRow) Tapped(*fyne.PointEvent) {
	if r.onTap != nil {
		r.onTap()
	}
}

func (r *todoRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, r.check, r.del, r.title))
}
