package translator

import (
	"inovelli-led-manager/internal/domain/model"
)

type Factory struct {
	strategies map[model.SwitchType]Translator
}

func NewFactory(scaler *HueScaler) *Factory {
	if scaler == nil {
		scaler = DefaultHueScaler()
	}
	switchLight := &LightStrategy{HueParam: 5, OnParam: 6, OffParam: 7, Scaler: scaler}
	dimmerLight := &LightStrategy{HueParam: 13, OnParam: 14, OffParam: 15, Scaler: scaler}
	comboLight := &LightStrategy{HueParam: 18, OnParam: 19, OffParam: 22, Scaler: scaler}
	comboFan := &FanStrategy{HueParam: 20, OnParam: 21, OffParam: 23, Scaler: scaler}

	return &Factory{
		strategies: map[model.SwitchType]Translator{
			model.SwitchTypeSwitch:     switchLight,
			model.SwitchTypeDimmer:     dimmerLight,
			model.SwitchTypeComboLight: comboLight,
			model.SwitchTypeComboFan:   comboFan,
			model.SwitchTypeCombo:      &ComboStrategy{Light: comboLight, Fan: comboFan},
		},
	}
}

func (f *Factory) GetTranslator(switchType model.SwitchType) (Translator, bool) {
	t, ok := f.strategies[switchType]
	return t, ok
}
