package cli

import "github.com/charmbracelet/bubbles/key"

type composeKeyMap struct {
	Generate     key.Binding
	Info         key.Binding
	Goals        key.Binding
	Startup      key.Binding
	AddFormation key.Binding
	Formation    key.Binding
	Practice     key.Binding
	Application  key.Binding
	ChangeKey    key.Binding
	Export       key.Binding
	SwitchTab    key.Binding
	Quit         key.Binding
}

func defaultComposeKeys() composeKeyMap {
	return composeKeyMap{
		Generate:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "tạo giáo án")),
		Info:         key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "thông tin")),
		Goals:        key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "mục tiêu")),
		Startup:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "khởi động")),
		AddFormation: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "thêm HĐ")),
		Formation:    key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "sửa HĐ")),
		Practice:     key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "luyện tập")),
		Application:  key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "vận dụng")),
		ChangeKey:    key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "đổi key")),
		Export:       key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "xuất HTML")),
		SwitchTab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "soạn thảo/xem trước")),
		Quit:         key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "thoát")),
	}
}

func (k composeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Generate, k.Info, k.Goals, k.Startup, k.AddFormation, k.Formation,
		k.Practice, k.Application, k.ChangeKey, k.Export, k.SwitchTab, k.Quit}
}

func (k composeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Generate, k.SwitchTab, k.Export, k.Quit},
		{k.Info, k.Goals, k.Startup, k.Practice, k.Application},
		{k.AddFormation, k.Formation, k.ChangeKey},
	}
}
