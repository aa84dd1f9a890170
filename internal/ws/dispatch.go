package ws

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/ArcFarmia_Go/internal/bridge"
	"github.com/osse101/ArcFarmia_Go/internal/catalog"
	"github.com/osse101/ArcFarmia_Go/internal/domain"
	"github.com/osse101/ArcFarmia_Go/internal/farm"
)

// Dispatcher routes intents to the farm and the chain bridge
type Dispatcher struct {
	farm     farm.Service
	bridge   bridge.Service
	catalog  *catalog.Catalog
	validate *validator.Validate
}

// NewDispatcher creates a dispatcher
func NewDispatcher(f farm.Service, br bridge.Service, cat *catalog.Catalog) *Dispatcher {
	return &Dispatcher{farm: f, bridge: br, catalog: cat, validate: validator.New()}
}

// Dispatch applies one intent. Rejections wrap domain.ErrActionRejected and
// come with a Result whose Reason is set. Every intent except sync needs a
// connected wallet.
func (d *Dispatcher) Dispatch(ctx context.Context, in Intent) (farm.Result, error) {
	if err := d.validate.Struct(in); err != nil {
		return farm.Result{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgMalformedIntent)
	}

	kind := strings.ToLower(in.Type)
	if kind != IntentSync && !d.bridge.Session().Connected {
		return farm.Result{}, domain.ErrWalletNotConnected
	}

	switch kind {
	case IntentPlant:
		index, err := required(in.Index, "index")
		if err != nil {
			return farm.Result{}, err
		}
		cropID := d.farm.View().SelectedCrop
		if in.CropID != "" {
			if cropID, err = d.catalog.Resolve(catalog.KindCrop, in.CropID); err != nil {
				return farm.Result{}, err
			}
		}
		return d.farm.Plant(ctx, index, cropID)
	case IntentWater:
		index, err := required(in.Index, "index")
		if err != nil {
			return farm.Result{}, err
		}
		return d.farm.Water(ctx, index)
	case IntentHarvest:
		index, err := required(in.Index, "index")
		if err != nil {
			return farm.Result{}, err
		}
		return d.farm.Harvest(ctx, index)
	case IntentClick:
		index, err := required(in.Index, "index")
		if err != nil {
			return farm.Result{}, err
		}
		return d.farm.Click(ctx, index)
	case IntentMove:
		return d.farm.Move(ctx, domain.Direction(strings.ToLower(in.Direction)))
	case IntentMode:
		return d.farm.SetMode(ctx, domain.Mode(strings.ToLower(in.Mode)))
	case IntentCrop:
		cropID, err := d.catalog.Resolve(catalog.KindCrop, in.CropID)
		if err != nil {
			return farm.Result{}, err
		}
		return d.farm.SelectCrop(ctx, cropID)
	case IntentSellHarvest:
		cropID, err := d.catalog.Resolve(catalog.KindCrop, in.CropID)
		if err != nil {
			return farm.Result{}, err
		}
		return d.farm.SellHarvest(ctx, cropID)
	case IntentSellProduce:
		productID, err := d.catalog.Resolve(catalog.KindProduct, in.ProductID)
		if err != nil {
			return farm.Result{}, err
		}
		return d.farm.SellProduce(ctx, productID)
	case IntentBuyAnimal:
		slot, err := required(in.Slot, "slot")
		if err != nil {
			return farm.Result{}, err
		}
		animalID, err := d.catalog.Resolve(catalog.KindAnimal, in.AnimalID)
		if err != nil {
			return farm.Result{}, err
		}
		return d.farm.BuyAnimal(ctx, slot, animalID)
	case IntentCollect:
		slot, err := required(in.Slot, "slot")
		if err != nil {
			return farm.Result{}, err
		}
		return d.farm.CollectProduce(ctx, slot)
	case IntentClaimQuest:
		questID, err := d.catalog.Resolve(catalog.KindQuest, in.QuestID)
		if err != nil {
			return farm.Result{}, err
		}
		return d.farm.ClaimQuest(ctx, questID)
	case IntentBuySeeds:
		cropID, err := d.catalog.Resolve(catalog.KindCrop, in.CropID)
		if err != nil {
			return farm.Result{}, err
		}
		return d.bridge.BuySeeds(ctx, cropID, in.Amount)
	case IntentClaimDaily:
		return d.bridge.ClaimDaily(ctx)
	case IntentDismissLevelUp:
		return d.farm.DismissLevelUp(ctx, in.NoticeID)
	case IntentSync:
		return farm.Result{Applied: true, Action: IntentSync, Revision: d.farm.Revision()}, nil
	}
	return farm.Result{}, fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, ErrMsgUnknownIntent, in.Type)
}

func required(v *int, name string) (int, error) {
	if v == nil {
		return 0, fmt.Errorf("%w: %s %s", domain.ErrInvalidInput, ErrMsgMissingField, name)
	}
	return *v, nil
}
