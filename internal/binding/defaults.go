package binding

// Defaults is the compiled-in binding table. It is applied after any override
// file, so an override claiming the same key in the same namespace wins.
//
//nolint:gochecknoglobals // immutable lookup table.
var Defaults = []Declaration{
	{Action: "menu_close", Key: "Escape"},
	{Action: "menu_parent", Key: "Left"},
	{Action: "menu_down", Key: "Down"},
	{Action: "menu_up", Key: "Up"},
	{Action: "menu_child", Key: "Right"},
	{Action: "menu_select", Key: "Return"},
	{Action: "menu_select", Key: "space"},

	{Action: "move_left", Key: "Left"},
	{Action: "move_left", Key: "h"},
	{Action: "move_right", Key: "Right"},
	{Action: "move_right", Key: "l"},
	{Action: "move_up", Key: "Up"},
	{Action: "move_up", Key: "k"},
	{Action: "move_down", Key: "Down"},
	{Action: "move_down", Key: "j"},
	{Action: "move_center", Key: "c"},

	{Action: "scroll_left", Key: "KP_Left"},
	{Action: "scroll_left", Key: "C-Left"},
	{Action: "scroll_right", Key: "KP_Right"},
	{Action: "scroll_right", Key: "C-Right"},
	{Action: "scroll_up", Key: "KP_Up"},
	{Action: "scroll_up", Key: "C-Up"},
	{Action: "scroll_down", Key: "KP_Down"},
	{Action: "scroll_down", Key: "C-Down"},
	{Action: "prev_img", Key: "Left"},
	{Action: "prev_img", Key: "p"},
	{Action: "prev_img", Key: "BackSpace"},
	{Action: "next_img", Key: "Right"},
	{Action: "next_img", Key: "n"},
	{Action: "next_img", Key: "space"},
	{Action: "jump_back", Key: "Prior"},
	{Action: "jump_fwd", Key: "Next"},
	{Action: "jump_first", Key: "Home"},
	{Action: "jump_last", Key: "End"},
	{Action: "jump_random", Key: "z"},
	{Action: "quit", Key: "Escape"},
	{Action: "quit", Key: "q"},
	{Action: "close", Key: "x"},
	{Action: "delete", Key: "C-Delete"},
	{Action: "remove", Key: "Delete"},
	{Action: "reload_image", Key: "r"},
	{Action: "render", Key: "KP_Begin"},
	{Action: "save_image", Key: "s"},
	{Action: "save_filelist", Key: "f"},
	{Action: "size_to_image", Key: "w"},
	{Action: "toggle_actions", Key: "a"},
	{Action: "toggle_aliasing", Key: "A"},
	{Action: "toggle_caption", Key: "c"},
	{Action: "toggle_filenames", Key: "d"},
	{Action: "toggle_fullscreen", Key: "v"},
	{Action: "toggle_info", Key: "e"},
	{Action: "toggle_menu", Key: "m"},
	{Action: "toggle_pause", Key: "h"},
	{Action: "toggle_pointer", Key: "o"},
	{Action: "zoom_default", Key: "KP_Multiply"},
	{Action: "zoom_default", Key: "asterisk"},
	{Action: "zoom_fit", Key: "KP_Divide"},
	{Action: "zoom_fit", Key: "slash"},
	{Action: "zoom_in", Key: "KP_Add"},
	{Action: "zoom_in", Key: "plus"},
	{Action: "zoom_out", Key: "KP_Subtract"},
	{Action: "zoom_out", Key: "minus"},
	{Action: "flip", Key: "underscore"},
	{Action: "mirror", Key: "bar"},
	{Action: "orient_1", Key: "greater"},
	{Action: "orient_3", Key: "less"},
	{Action: "help", Key: "F1"},
}
