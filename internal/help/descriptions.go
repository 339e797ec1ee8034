package help

//nolint:gochecknoglobals // immutable lookup table.
var builtinDescriptions = map[string]string{
	"close":             "Close the current window",
	"delete":            "Delete the current image from disk and the file list",
	"flip":              "Flip the image vertically",
	"help":              "Show the key reference",
	"jump_back":         "Jump back several images",
	"jump_first":        "Show the first image",
	"jump_fwd":          "Jump forward several images",
	"jump_last":         "Show the last image",
	"jump_random":       "Show a random image",
	"menu_child":        "Open the selected submenu",
	"menu_close":        "Close the menu",
	"menu_down":         "Select the next menu item",
	"menu_parent":       "Return to the parent menu",
	"menu_select":       "Activate the selected menu item",
	"menu_up":           "Select the previous menu item",
	"mirror":            "Mirror the image horizontally",
	"move_center":       "Center the image in the window",
	"move_down":         "Move the image down",
	"move_left":         "Move the image left",
	"move_right":        "Move the image right",
	"move_up":           "Move the image up",
	"next_img":          "Show the next image",
	"orient_1":          "Rotate the image 90 degrees clockwise",
	"orient_3":          "Rotate the image 90 degrees counter-clockwise",
	"prev_img":          "Show the previous image",
	"quit":              "Quit the viewer",
	"reload_image":      "Reload the current image",
	"remove":            "Remove the current image from the file list",
	"render":            "Render the image at its original size",
	"save_filelist":     "Save the current file list",
	"save_image":        "Save a copy of the current image",
	"scroll_down":       "Scroll the image down",
	"scroll_left":       "Scroll the image left",
	"scroll_right":      "Scroll the image right",
	"scroll_up":         "Scroll the image up",
	"size_to_image":     "Resize the window to the image",
	"toggle_actions":    "Toggle display of configured actions",
	"toggle_aliasing":   "Toggle anti-aliasing",
	"toggle_caption":    "Edit the image caption",
	"toggle_filenames":  "Toggle display of the file name",
	"toggle_fullscreen": "Toggle fullscreen mode",
	"toggle_info":       "Toggle the info line",
	"toggle_menu":       "Open the main menu",
	"toggle_pause":      "Pause or resume the slideshow",
	"toggle_pointer":    "Toggle the mouse pointer",
	"zoom_default":      "Zoom to 100%",
	"zoom_fit":          "Zoom to fit the window",
	"zoom_in":           "Zoom in",
	"zoom_out":          "Zoom out",
}
