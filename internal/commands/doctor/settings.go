package doctor

import (
	"context"

	"github.com/hay-kot/efie/internal/core/settings"
	"github.com/hay-kot/efie/internal/store/vault"
)

// SettingsCheck validates the stored settings against the vault.
type SettingsCheck struct {
	store      settings.Store
	vault      *vault.FS
	createDirs bool
}

// NewSettingsCheck creates a new settings check. createDirs mirrors the
// create_save_location config key.
func NewSettingsCheck(store settings.Store, v *vault.FS, createDirs bool) *SettingsCheck {
	return &SettingsCheck{store: store, vault: v, createDirs: createDirs}
}

func (c *SettingsCheck) Name() string {
	return "Settings"
}

func (c *SettingsCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	st, err := c.store.Load(ctx)
	if err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "Settings loaded",
			Status: StatusFail,
			Detail: err.Error(),
		})
		return result
	}

	if err := st.Validate(); err != nil {
		result.addErr(err)
		return result
	}

	result.Items = append(result.Items, CheckItem{
		Label:  "Settings valid",
		Status: StatusPass,
	})

	if st.Host == "" || st.Slug == "" {
		result.Items = append(result.Items, CheckItem{
			Label:  "Last fetch",
			Status: StatusWarn,
			Detail: "no host or slug stored yet",
		})
	}

	info, err := c.vault.Stat(st.SaveLocation)
	switch {
	case err == nil && info.IsDir():
		result.Items = append(result.Items, CheckItem{
			Label:  "Save location",
			Status: StatusPass,
			Detail: st.SaveLocation,
		})
	case err == nil:
		result.Items = append(result.Items, CheckItem{
			Label:  "Save location",
			Status: StatusFail,
			Detail: st.SaveLocation + " is not a directory",
		})
	case c.createDirs:
		result.Items = append(result.Items, CheckItem{
			Label:  "Save location",
			Status: StatusWarn,
			Detail: st.SaveLocation + " does not exist yet and will be created on first save",
		})
	default:
		result.Items = append(result.Items, CheckItem{
			Label:  "Save location",
			Status: StatusFail,
			Detail: st.SaveLocation + " does not exist and create_save_location is off",
		})
	}

	return result
}
