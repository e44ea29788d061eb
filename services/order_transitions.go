package services

import (
	"plateful/entity"

	"gorm.io/gorm"
)

// transition moves an order from one status to the next with a conditional
// update. Re-issuing a transition whose target is already the current status
// succeeds as a no-op; any other mismatch is a conflict.
func (s *OrderService) transition(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) error {
	affected, err := s.Repo.UpdateStatusGuard(tx, orderID, from, to)
	if err != nil {
		return err
	}
	if affected == 0 {
		o, err := s.Repo.GetOrder(orderID)
		if err != nil {
			return err
		}
		if o.Status == to {
			return nil
		}
		return ErrConflict
	}
	return nil
}

func (s *OrderService) ownerTransition(ownerID, orderID uint, from, to entity.OrderStatus) error {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return err
	}
	ok, err := s.RestRepo.IsOwnedBy(o.RestaurantID, ownerID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.transition(tx, orderID, from, to)
	})
	if err != nil {
		return err
	}
	s.notifyStatus(orderID, to, o.DriverID)
	return nil
}

// ----- Restaurant actions -----

func (s *OrderService) OwnerAccept(ownerID, orderID uint) error {
	return s.ownerTransition(ownerID, orderID, entity.StatusPending, entity.StatusAccepted)
}

func (s *OrderService) OwnerStartPreparing(ownerID, orderID uint) error {
	return s.ownerTransition(ownerID, orderID, entity.StatusAccepted, entity.StatusPreparing)
}

func (s *OrderService) OwnerMarkReady(ownerID, orderID uint) error {
	return s.ownerTransition(ownerID, orderID, entity.StatusPreparing, entity.StatusPickupPending)
}

func (s *OrderService) OwnerCancel(ownerID, orderID uint) error {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return err
	}
	ok, err := s.RestRepo.IsOwnedBy(o.RestaurantID, ownerID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return s.cancel(orderID)
}

// ----- Customer actions -----

// CustomerCancel only works before the restaurant has started cooking. The
// status precondition is part of the conditional update, so a cancel racing
// the kitchen's transition cannot land after cooking started.
func (s *OrderService) CustomerCancel(userID, orderID uint) error {
	if _, err := s.Repo.GetOrderForUser(userID, orderID); err != nil {
		return err
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.CancelGuardFrom(tx, orderID,
			[]entity.OrderStatus{entity.StatusPending, entity.StatusAccepted})
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrConflict
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.notifyStatus(orderID, entity.StatusCancelled, nil)
	return nil
}

// ----- Admin actions -----

func (s *OrderService) AdminCancel(orderID uint) error {
	return s.cancel(orderID)
}

func (s *OrderService) cancel(orderID uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.CancelGuard(tx, orderID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrConflict
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.notifyStatus(orderID, entity.StatusCancelled, nil)
	return nil
}

// ----- Driver actions -----

// DriverClaim assigns the order to the calling driver with a conditional
// write on (status, driver_id), so two drivers racing for the same order
// cannot both win.
func (s *OrderService) DriverClaim(driverUserID, orderID uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.ClaimForDriver(tx, orderID, driverUserID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrAlreadyClaimed
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.notifyStatus(orderID, entity.StatusPickupAccepted, &driverUserID)
	return nil
}

func (s *OrderService) driverTransition(driverUserID, orderID uint, from, to entity.OrderStatus) error {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return err
	}
	if o.DriverID == nil || *o.DriverID != driverUserID {
		return ErrForbidden
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.transition(tx, orderID, from, to)
	})
	if err != nil {
		return err
	}
	s.notifyStatus(orderID, to, &driverUserID)
	return nil
}

func (s *OrderService) DriverConfirmPickup(driverUserID, orderID uint) error {
	return s.driverTransition(driverUserID, orderID, entity.StatusPickupAccepted, entity.StatusPickedUp)
}

func (s *OrderService) DriverStartDelivery(driverUserID, orderID uint) error {
	return s.driverTransition(driverUserID, orderID, entity.StatusPickedUp, entity.StatusDelivering)
}

func (s *OrderService) DriverComplete(driverUserID, orderID uint) error {
	return s.driverTransition(driverUserID, orderID, entity.StatusDelivering, entity.StatusDelivered)
}
