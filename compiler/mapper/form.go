package mapper

import (
	"fmt"
	"strings"

	"github.com/syssam/scaffold/compiler/naming"
	"github.com/syssam/scaffold/schema/field"
)

// Widget is the kind of form control rendered for a field.
type Widget int

// Form widgets.
const (
	WidgetInput Widget = iota
	WidgetTextarea
	WidgetCheckbox
	WidgetSelect
)

// String returns the widget name.
func (w Widget) String() string {
	switch w {
	case WidgetTextarea:
		return "textarea"
	case WidgetCheckbox:
		return "checkbox"
	case WidgetSelect:
		return "select"
	default:
		return "input"
	}
}

// Control describes the form control of a field.
type Control struct {
	Widget Widget
	// InputType is the type attribute of an input widget.
	InputType string
	// Options is the view variable holding the choices of a select widget.
	Options string
}

// Control returns the form control of f. Email and password names override
// the type-based choice.
func (m *Mapper) Control(f *field.Descriptor) Control {
	switch PurposeOf(f.Name) {
	case PurposePassword:
		return Control{Widget: WidgetInput, InputType: "password"}
	case PurposeEmail:
		return Control{Widget: WidgetInput, InputType: "email"}
	}
	if f.IsForeignKey() {
		return Control{Widget: WidgetSelect, Options: m.RelatedNames(f).CamelPlural}
	}
	switch f.Family() {
	case field.FamilyText, field.FamilyJSON:
		return Control{Widget: WidgetTextarea}
	case field.FamilyBoolean:
		return Control{Widget: WidgetCheckbox, InputType: "checkbox"}
	case field.FamilyDate:
		return Control{Widget: WidgetInput, InputType: "date"}
	case field.FamilyDateTime:
		return Control{Widget: WidgetInput, InputType: "datetime-local"}
	case field.FamilyTime:
		return Control{Widget: WidgetInput, InputType: "time"}
	case field.FamilyInteger, field.FamilyDecimal, field.FamilyYear:
		return Control{Widget: WidgetInput, InputType: "number"}
	}
	switch PurposeOf(f.Name) {
	case PurposeURL, PurposeImage:
		return Control{Widget: WidgetInput, InputType: "url"}
	case PurposePhone:
		return Control{Widget: WidgetInput, InputType: "tel"}
	}
	return Control{Widget: WidgetInput, InputType: "text"}
}

const (
	labelClass = "block text-gray-700 text-sm font-bold mb-2"
	inputClass = "shadow appearance-none border rounded w-full py-2 px-3 text-gray-700 leading-tight focus:outline-none focus:shadow-outline"
	errorBlock = "@error('%[1]s')\n    <p class=\"text-red-500 text-xs italic\">{{ $message }}</p>\n@enderror"
)

// FormField renders the Blade form group of f for a create form, or for an
// edit form bound to the entity variable when edit is set.
func (m *Mapper) FormField(f *field.Descriptor, edit bool) string {
	label := naming.Label(f.Name)
	old := fmt.Sprintf("old('%s')", f.Name)
	if edit {
		old = fmt.Sprintf("old('%s', $%s->%s)", f.Name, m.Entity.Camel, f.Name)
	}
	c := m.Control(f)
	var control string
	switch c.Widget {
	case WidgetTextarea:
		control = fmt.Sprintf(`<textarea class="%s" id="%s" name="%s" rows="4">{{ %s }}</textarea>`, inputClass, f.Name, f.Name, old)
	case WidgetCheckbox:
		return fmt.Sprintf(`<div class="mb-4">
    <input type="hidden" name="%[1]s" value="0">
    <label class="%[2]s" for="%[1]s">
        <input type="checkbox" id="%[1]s" name="%[1]s" value="1" @checked(%[3]s)>
        %[4]s
    </label>
    %[5]s
</div>`, f.Name, labelClass, old, label, indentTail(fmt.Sprintf(errorBlock, f.Name), "    "))
	case WidgetSelect:
		related := m.RelatedNames(f)
		control = fmt.Sprintf(`<select class="%s" id="%s" name="%s">
    <option value="">Select %s</option>
    @foreach ($%s as $option)
        <option value="{{ $option->id }}" @selected(%s == $option->id)>{{ $option->name ?? $option->id }}</option>
    @endforeach
</select>`, inputClass, f.Name, f.Name, related.Label, c.Options, old)
	default:
		value := fmt.Sprintf(` value="{{ %s }}"`, old)
		if c.InputType == "password" {
			value = ""
		}
		control = fmt.Sprintf(`<input class="%s" id="%s" type="%s" name="%s"%s>`, inputClass, f.Name, c.InputType, f.Name, value)
	}
	return fmt.Sprintf(`<div class="mb-4">
    <label class="%s" for="%s">%s</label>
    %s
    %s
</div>`, labelClass, f.Name, label, indentTail(control, "    "), indentTail(fmt.Sprintf(errorBlock, f.Name), "    "))
}

// LivewireField renders the form group of f bound with wire:model.
func (m *Mapper) LivewireField(f *field.Descriptor) string {
	label := naming.Label(f.Name)
	errBlock := fmt.Sprintf(`@error('%s') <span class="text-danger">{{ $message }}</span> @enderror`, f.Name)
	c := m.Control(f)
	switch c.Widget {
	case WidgetCheckbox:
		return fmt.Sprintf(`<div class="mb-3 form-check">
    <input type="checkbox" class="form-check-input" id="%[1]s" wire:model="%[1]s">
    <label class="form-check-label" for="%[1]s">%[2]s</label>
    %[3]s
</div>`, f.Name, label, errBlock)
	case WidgetTextarea:
		return fmt.Sprintf(`<div class="mb-3">
    <label for="%[1]s" class="form-label">%[2]s</label>
    <textarea class="form-control" id="%[1]s" wire:model="%[1]s" rows="3"></textarea>
    %[3]s
</div>`, f.Name, label, errBlock)
	case WidgetSelect:
		return fmt.Sprintf(`<div class="mb-3">
    <label for="%[1]s" class="form-label">%[2]s</label>
    <select class="form-select" id="%[1]s" wire:model="%[1]s">
        <option value="">Select %[4]s</option>
        @foreach ($%[3]s as $option)
            <option value="{{ $option->id }}">{{ $option->name ?? $option->id }}</option>
        @endforeach
    </select>
    %[5]s
</div>`, f.Name, label, c.Options, m.RelatedNames(f).Label, errBlock)
	default:
		return fmt.Sprintf(`<div class="mb-3">
    <label for="%[1]s" class="form-label">%[2]s</label>
    <input type="%[3]s" class="form-control" id="%[1]s" wire:model="%[1]s">
    %[4]s
</div>`, f.Name, label, c.InputType, errBlock)
	}
}

// DisplayField renders the detail view entry of f.
func (m *Mapper) DisplayField(f *field.Descriptor) string {
	return fmt.Sprintf(`<div class="mb-4">
    <h5 class="font-bold">%s</h5>
    <p>{{ %s }}</p>
</div>`, naming.Label(f.Name), m.DisplayValue(f))
}

// DisplayValue returns the Blade expression printing f of the entity.
func (m *Mapper) DisplayValue(f *field.Descriptor) string {
	v := fmt.Sprintf("$%s->%s", m.Entity.Camel, f.Name)
	if f.Family() == field.FamilyBoolean {
		return v + " ? 'Yes' : 'No'"
	}
	if f.Family() == field.FamilyJSON {
		return "json_encode(" + v + ")"
	}
	return v
}

// indentTail indents every line of s but the first.
func indentTail(s, prefix string) string {
	return strings.ReplaceAll(s, "\n", "\n"+prefix)
}
