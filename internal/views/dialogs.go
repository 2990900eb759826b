package views

import (
	"fmt"
	"strings"

	"crocpad/internal/onboarding"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// troubleshooterSteps are shown one at a time, whatever the user does
var troubleshooterSteps = []string{
	"Crocpad++ has detected that you are typing.",
	"Checking keyboard for crocodiles...",
	"Asking the crocodile whether it has seen your problem...",
	"Reticulating splines...",
	"No problems were found. The problem may be you.",
}

// FlashConfirm shows the "Are you sure?" dialog and takes it away again at once
func (mv *MainView) FlashConfirm() {
	d := dialog.NewInformation("Are you sure?", strings.Repeat("_", 100), mv.window)
	d.Show()
	d.Hide()
}

// ShowTroubleshooter opens the modal troubleshooter; typing resumes once it is dismissed
func (mv *MainView) ShowTroubleshooter() {
	step := 0
	message := widget.NewLabel(troubleshooterSteps[step])
	message.Wrapping = fyne.TextWrapWord
	progress := widget.NewProgressBar()

	var d *dialog.CustomDialog
	next := widget.NewButton("Next", nil)
	next.OnTapped = func() {
		step++
		if step >= len(troubleshooterSteps) {
			d.Hide()
			return
		}
		message.SetText(troubleshooterSteps[step])
		progress.SetValue(float64(step) / float64(len(troubleshooterSteps)-1))
		if step == len(troubleshooterSteps)-1 {
			next.SetText("Finish")
		}
	}

	content := container.NewVBox(message, progress, next)
	d = dialog.NewCustom("Crocpad++ Troubleshooter", "Cancel", content, mv.window)
	d.Resize(fyne.NewSize(520, 260))
	d.Show()
}

// ShowTip displays the tip of the day
func (mv *MainView) ShowTip(tip string) {
	dialog.NewInformation("Tip of the Day", tip, mv.window).Show()
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(title string, err error) {
	dialog.ShowError(fmt.Errorf("%s: %w", title, err), mv.window)
	mv.statusBar.SetStatus(title)
}

// ShowLicense displays the license text until the user dismisses it
func (mv *MainView) ShowLicense(text string, onClose func()) {
	body := widget.NewLabel(text)
	body.Wrapping = fyne.TextWrapWord

	d := dialog.NewCustom("End-User License Agreement", "I have read it", container.NewVScroll(body), mv.window)
	d.SetOnClosed(onClose)
	d.Resize(fyne.NewSize(640, 520))
	d.Show()
}

// AskQuiz shows the comprehension quiz; either button submits whatever was chosen
func (mv *MainView) AskQuiz(quiz onboarding.Quiz, submit func(answers []int)) {
	answers := make([]int, len(quiz))
	questions := container.NewVBox()
	for i, q := range quiz {
		answers[i] = onboarding.Unanswered
		prompt := widget.NewLabelWithStyle(fmt.Sprintf("%d. %s", i+1, q.Prompt), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
		choices := widget.NewRadioGroup(q.Choices, func(selected string) {
			answers[i] = indexOf(q.Choices, selected)
		})
		questions.Add(prompt)
		questions.Add(choices)
	}

	d := dialog.NewCustomConfirm("License comprehension quiz", "Submit", "I don't know", container.NewVScroll(questions),
		func(bool) {
			submit(answers)
		}, mv.window)
	d.Resize(fyne.NewSize(640, 560))
	d.Show()
}

// ChooseOpenPath asks for an existing file; cancelling yields ""
func (mv *MainView) ChooseOpenPath(onChosen func(path string)) {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			mv.ShowError("Open failed", err)
			return
		}
		if reader == nil {
			onChosen("")
			return
		}
		path := reader.URI().Path()
		reader.Close()
		onChosen(path)
	}, mv.window)
}

// ChooseSavePath asks for a destination file; cancelling yields ""
func (mv *MainView) ChooseSavePath(onChosen func(path string)) {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			mv.ShowError("Save failed", err)
			return
		}
		if writer == nil {
			onChosen("")
			return
		}
		path := writer.URI().Path()
		writer.Close()
		onChosen(path)
	}, mv.window)
}

// ChooseFont offers the available fonts
func (mv *MainView) ChooseFont(fonts []string, onChosen func(font string)) {
	choice := widget.NewSelect(fonts, nil)
	if len(fonts) > 0 {
		choice.SetSelected(fonts[0])
	}

	dialog.ShowCustomConfirm("Change font", "OK", "Cancel", choice, func(ok bool) {
		if !ok {
			onChosen("")
			return
		}
		onChosen(choice.Selected)
	}, mv.window)
}

// ChooseSymbol shows a grid of symbols; picking one closes the dialog
func (mv *MainView) ChooseSymbol(symbols []string, onChosen func(symbol string)) {
	var d *dialog.CustomDialog
	grid := container.NewGridWithColumns(8)
	for _, symbol := range symbols {
		grid.Add(widget.NewButton(symbol, func() {
			d.Hide()
			onChosen(symbol)
		}))
	}

	d = dialog.NewCustom("Insert symbol", "Cancel", grid, mv.window)
	d.Show()
}

func indexOf(choices []string, selected string) int {
	for i, c := range choices {
		if c == selected {
			return i
		}
	}
	return onboarding.Unanswered
}
