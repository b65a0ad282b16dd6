package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// DeliveryConfig holds billing tunables that operators adjust without a
// redeploy: the flat per-month delivery charge added to every bill.
type DeliveryConfig struct {
	MonthlyCharge float64 `mapstructure:"monthlyCharge"`
}

func DefaultDeliveryConfig() DeliveryConfig {
	return DeliveryConfig{
		MonthlyCharge: 100,
	}
}

// DeliveryConfigHolder exposes the current DeliveryConfig and hot-reloads
// it when the backing file changes.
type DeliveryConfigHolder struct {
	current atomic.Value // holds DeliveryConfig
}

func NewDeliveryConfigHolder() (*DeliveryConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("delivery")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/dairyadmin")
	v.AddConfigPath(".")

	v.SetEnvPrefix("DAIRYADMIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultDeliveryConfig()
	v.SetDefault("delivery.monthlyCharge", defaults.MonthlyCharge)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg DeliveryConfig
	if err := v.UnmarshalKey("delivery", &cfg); err != nil {
		return nil, err
	}
	if err := validateDeliveryConfig(cfg); err != nil {
		return nil, err
	}

	holder := &DeliveryConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated DeliveryConfig
		if err := v.UnmarshalKey("delivery", &updated); err != nil {
			log.Printf("[delivery-config] reload failed: %v", err)
			return
		}
		if err := validateDeliveryConfig(updated); err != nil {
			log.Printf("[delivery-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[delivery-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

func (h *DeliveryConfigHolder) Get() DeliveryConfig {
	return h.current.Load().(DeliveryConfig)
}

func validateDeliveryConfig(cfg DeliveryConfig) error {
	if cfg.MonthlyCharge < 0 {
		return errors.New("delivery.monthlyCharge cannot be negative")
	}
	return nil
}
